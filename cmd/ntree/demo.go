package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/aglyzov/go-ntree/ntree"
)

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "insert a single value into a default quad-tree and count the leaves",
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	cfg := ntree.DefaultConfig(2)

	tree, err := ntree.NewWithConfig[any](cfg)
	if err != nil {
		return err
	}

	h, err := tree.Insert("hey", 0, 0.1)
	if err != nil {
		return err
	}
	slog.Debug("inserted", "leaf", h, "path", tree.Path(h))

	leaves := tree.Leaves()

	fmt.Fprintf(cctx.App.Writer, "Found %d %s\n", len(leaves), plural(len(leaves), "leaf", "leaves"))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
