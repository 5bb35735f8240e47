// Command dashoutline applies the dashed outline filter to SVG path data.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mekkablue/dashoutline"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "dashoutline: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "dashoutline"
	app.Usage = "Turn outlines into dashed strokes"
	app.Description = `dashoutline cuts every contour of an outline into dashes and gaps, strokes
the dashes and rounds their ends. Outlines are read and written as SVG path data.`
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Log filter statistics to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			dashoutline.SetLogger(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
		return nil
	}
	app.Commands = []*cli.Command{
		cmdApply(),
		cmdBatch(),
		cmdParam(),
	}
	return app
}

func cmdParam() *cli.Command {
	return &cli.Command{
		Name:   "param",
		Usage:  "Print the custom parameter string for the effective parameters",
		Flags:  filterFlags(),
		Action: runParam,
	}
}

func runParam(c *cli.Context) error {
	f, err := filterFromContext(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, f.CustomParameter())
	return err
}
