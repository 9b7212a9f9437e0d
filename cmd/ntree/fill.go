package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"

	"github.com/aglyzov/go-ntree/ntree"
)

var cmdFill = &cli.Command{
	Name:  "fill",
	Usage: "insert random named points and report how the tree grew",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of points to insert",
			Value: 100,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random generator seed (0 picks a random one)",
		},
		&cli.BoolFlag{
			Name:  "print",
			Usage: "print the resulting tree",
		},
	},
	Action: runFill,
}

func runFill(cctx *cli.Context) error {
	cfg := treeConfig(cctx)

	tree, err := ntree.NewWithConfig[string](cfg)
	if err != nil {
		return err
	}

	count := cctx.Int("count")
	if count < 0 {
		return fmt.Errorf("count must not be negative: %d", count)
	}

	var (
		fake     = gofakeit.New(cctx.Int64("seed"))
		coords   = make([]float64, cfg.Dims)
		replaced int
	)

	for i := 0; i < count; i++ {
		for k := range coords {
			coords[k] = fake.Float64Range(0, cfg.Scale)
		}
		name := fake.Name()

		before := tree.LeafCount()

		h, err := tree.Insert(name, coords...)
		if errors.Is(err, ntree.ErrOutOfRange) {
			slog.Warn("skipping point", "coords", coords, "err", err)
			continue
		}
		if err != nil {
			return err
		}

		if tree.LeafCount() == before {
			replaced++
		}
		slog.Debug("inserted", "name", name, "coords", coords, "leaf", h)
	}

	slog.Info("filled tree",
		"dims", cfg.Dims,
		"depth", cfg.Depth,
		"scale", cfg.Scale,
		"points", count,
		"leaves", tree.LeafCount(),
		"replaced", replaced,
		"nodes", tree.NodeCount(),
		"capacity", tree.MaxNodeCount(),
	)

	if cctx.Bool("print") {
		fmt.Fprintln(cctx.App.Writer, prettyTree(tree))
	}

	leaves := len(tree.Leaves())
	fmt.Fprintf(cctx.App.Writer, "Found %d %s\n", leaves, plural(leaves, "leaf", "leaves"))
	return nil
}
