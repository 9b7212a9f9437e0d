package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"github.com/aglyzov/go-ntree/ntree"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var treeFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "dims",
		Usage:   "number of coordinate axes (2: quad-tree, 3: oct-tree)",
		Value:   2,
		EnvVars: []string{"NTREE_DIMS"},
	},
	&cli.IntFlag{
		Name:    "depth",
		Usage:   "number of subdivision levels",
		Value:   3,
		EnvVars: []string{"NTREE_DEPTH"},
	},
	&cli.Float64Flag{
		Name:    "scale",
		Usage:   "extent of the domain on every axis",
		Value:   1,
		EnvVars: []string{"NTREE_SCALE"},
	},
}

var logFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "log-level",
		Usage:   "log verbosity level (error, warn, info, debug)",
		Value:   "info",
		EnvVars: []string{"NTREE_LOG_LEVEL", "LOG_LEVEL"},
	},
	&cli.StringFlag{
		Name:    "log-format",
		Usage:   "log output format (text, json)",
		Value:   "text",
		EnvVars: []string{"NTREE_LOG_FORMAT"},
	},
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

func newApp(out, logOut io.Writer) *cli.App {
	app := &cli.App{
		Name:    "ntree",
		Usage:   "build and inspect D-dimensional subdivision trees",
		Version: versioninfo.Short(),
		Writer:  out,
		Flags:   append(append([]cli.Flag{}, treeFlags...), logFlags...),
		Before: func(cctx *cli.Context) error {
			_, err := setupSlog(logOut, cctx.String("log-level"), cctx.String("log-format"))
			return err
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdFill,
		cmdLocate,
	}
	return app
}

// treeConfig reads the global tree flags.
func treeConfig(cctx *cli.Context) ntree.Config {
	return ntree.Config{
		Dims:  cctx.Int("dims"),
		Depth: cctx.Int("depth"),
		Scale: cctx.Float64("scale"),
	}
}
