package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/aglyzov/go-ntree/ntree"
)

var cmdLocate = &cli.Command{
	Name:      "locate",
	Usage:     "print the cell path and bounds of a point",
	ArgsUsage: "<coord>...",
	Action:    runLocate,
}

func runLocate(cctx *cli.Context) error {
	coords, err := parseCoords(cctx.Args().Slice())
	if err != nil {
		return err
	}

	tree, err := ntree.NewWithConfig[struct{}](treeConfig(cctx))
	if err != nil {
		return err
	}

	path, err := tree.Locate(coords...)
	if err != nil {
		return err
	}

	h, err := tree.Lookup(coords...)
	if err != nil {
		return err
	}

	lo, hi, err := tree.Bounds(h)
	if err != nil {
		return err
	}

	fmt.Fprintf(cctx.App.Writer, "path:   %v\n", path)
	fmt.Fprintf(cctx.App.Writer, "bounds: %v - %v\n", lo, hi)
	return nil
}

func parseCoords(args []string) ([]float64, error) {
	coords := make([]float64, len(args))

	for i, arg := range args {
		c, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		coords[i] = c
	}

	return coords, nil
}
