package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/growler/go-rtf2html"
	"github.com/growler/go-rtf2html/internal/logging"
)

var inputFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "charset",
		Usage: "Code page of the document file, e.g. windows-1252 or ansicpg1251",
		Value: "utf-8",
	},
	&cli.BoolFlag{
		Name:  "strip-html",
		Usage: "Drop raw markup (Html nodes) from the document before rendering",
	},
}

var renderCommand = &cli.Command{
	Name:      "render",
	Usage:     "Write the XHTML fragment for a document file",
	ArgsUsage: "[document file, - or nothing for stdin]",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Put container output on lines of its own",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write to `FILE` instead of stdout",
		},
	}, inputFlags...),
	Action: renderAction,
}

var treeCommand = &cli.Command{
	Name:      "tree",
	Usage:     "Dump the tag tree built for a document file",
	ArgsUsage: "[document file]",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Include pretty-break markers",
		},
		&cli.BoolFlag{
			Name:  "detail",
			Usage: "Dump every field of the tag tree",
		},
	}, inputFlags...),
	Action: treeAction,
}

var statsCommand = &cli.Command{
	Name:      "stats",
	Usage:     "Count the nodes of a document file by kind",
	ArgsUsage: "[document file]",
	Flags:     inputFlags,
	Action:    statsAction,
}

func loadDocument(cc *cli.Context) (*rtf2html.Document, error) {
	r := cc.App.Reader
	name := cc.Args().First()
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open document: %w", err)
		}
		defer f.Close()
		r = f
	} else {
		name = "<stdin>"
	}

	r, err := rtf2html.DecodeCharset(cc.String("charset"), r)
	if err != nil {
		return nil, err
	}
	doc, err := rtf2html.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	logging.Info("read document", "file", name, "items", len(doc.Content))

	if cc.Bool("strip-html") {
		doc = stripHtml(doc)
	}
	return doc, nil
}

func stripHtml(doc *rtf2html.Document) *rtf2html.Document {
	var dropped int
	doc = rtf2html.Filter(doc, func(*rtf2html.Html) ([]rtf2html.Item, rtf2html.WalkResult) {
		dropped++
		return nil, rtf2html.WalkReplace
	})
	if dropped > 0 {
		logging.Warn("dropped raw markup", "nodes", dropped)
	}
	return doc
}

func renderAction(cc *cli.Context) error {
	doc, err := loadDocument(cc)
	if err != nil {
		return err
	}

	out := cc.App.Writer
	if name := cc.String("output"); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	conf := rtf2html.Conf{}.WithPretty(cc.Bool("pretty")).WithLogger(logging.Default())
	if _, err := conf.Write(doc, out); err != nil {
		return err
	}
	return nil
}

func treeAction(cc *cli.Context) error {
	doc, err := loadDocument(cc)
	if err != nil {
		return err
	}
	root, err := rtf2html.Conf{}.WithPretty(cc.Bool("pretty")).Build(doc)
	if err != nil {
		return err
	}
	if cc.Bool("detail") {
		logging.Fdump(cc.App.Writer, root)
		return nil
	}
	_, err = fmt.Fprintln(cc.App.Writer, root.String())
	return err
}

func statsAction(cc *cli.Context) error {
	doc, err := loadDocument(cc)
	if err != nil {
		return err
	}
	counts := countKinds(doc)
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		if _, err := fmt.Fprintf(cc.App.Writer, "%-10s %d\n", k, counts[rtf2html.Kind(k)]); err != nil {
			return err
		}
	}
	return nil
}

func countKinds(doc *rtf2html.Document) map[rtf2html.Kind]int {
	counts := map[rtf2html.Kind]int{}
	rtf2html.Query(doc, func(i rtf2html.Item) rtf2html.WalkResult {
		counts[rtf2html.KindOf(i)]++
		return rtf2html.WalkContinue
	})
	return counts
}
