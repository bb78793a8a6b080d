package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/growler/go-rtf2html/internal/logging"
)

func newApp() *cli.App {
	return &cli.App{
		Name:           "rtf2xhtml",
		HelpName:       "rtf2xhtml",
		Usage:          "Render a rich-text document tree as an XHTML fragment",
		Flags:          logging.Flags,
		DefaultCommand: renderCommand.Name,
		Before: func(cc *cli.Context) error {
			logging.SetupWriter(cc.App.ErrWriter)
			return nil
		},
		Commands: []*cli.Command{
			renderCommand,
			treeCommand,
			statsCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
