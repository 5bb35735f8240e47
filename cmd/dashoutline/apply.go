package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mekkablue/dashoutline"
	"github.com/urfave/cli/v2"
)

func cmdApply() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Dash the outline in a file of SVG path data",
		ArgsUsage: "FILE|-",
		Flags: slices.Concat(filterFlags(), []cli.Flag{
			&cli.BoolFlag{
				Name:  "svg",
				Usage: "Write a complete SVG document instead of path data",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to `FILE` instead of stdout",
			},
		}),
		Action: runApply,
	}
}

func runApply(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("apply expects exactly one input file, or - for stdin")
	}
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	opts := outputOptions{
		svg:       c.Bool("svg"),
		precision: cfg.Precision,
	}

	var r io.Reader = c.App.Reader
	if name := c.Args().First(); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	if name := c.String("output"); name != "" {
		return writeFile(name, func(w io.Writer) error {
			return dashStream(r, w, cfg.filter(), opts)
		})
	}
	return dashStream(r, c.App.Writer, cfg.filter(), opts)
}

type outputOptions struct {
	svg       bool
	precision int
}

// dashStream reads path data from r, applies f and writes the result to w.
func dashStream(r io.Reader, w io.Writer, f *dashoutline.Filter, opts outputOptions) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	o, err := dashoutline.ParseSVG(string(data))
	if err != nil {
		return err
	}
	dashed, err := f.Apply(o)
	if err != nil {
		return err
	}

	svgOpts := dashoutline.SVGOptions{MaxPrecision: opts.precision}
	if opts.svg {
		return dashoutline.WriteSVGDocument(w, dashed, svgOpts)
	}
	if err := dashoutline.WriteSVG(w, dashed.Elements(), svgOpts); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// writeFile creates name and passes a buffered writer for it to fn.
func writeFile(name string, fn func(w io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
