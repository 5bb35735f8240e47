package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mekkablue/dashoutline"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// manifest lists the jobs of a batch run:
//
//	jobs:
//	  - name: regular
//	    input: regular.txt
//	    output: regular-dashed.svg
//	    parameters: "DashedOutline; strokeWidth:20; dash:100; gap:30"
//	    svg: true
//
// Relative file names are resolved against the manifest's directory.
type manifest struct {
	Jobs []job `yaml:"jobs"`
}

type job struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	// Custom parameter string applied on top of the base configuration.
	Parameters string `yaml:"parameters"`
	SVG        bool   `yaml:"svg"`
}

func cmdBatch() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Run the jobs listed in a YAML manifest",
		ArgsUsage: "MANIFEST",
		Flags:     filterFlags(),
		Action:    runBatch,
	}
}

func readManifest(path string) (manifest, error) {
	var m manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	for i, j := range m.Jobs {
		if j.Input == "" || j.Output == "" {
			return m, fmt.Errorf("manifest %s: job %d (%q) needs input and output", path, i, j.Name)
		}
	}
	return m, nil
}

func runBatch(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("batch expects exactly one manifest")
	}
	base, err := configFromContext(c)
	if err != nil {
		return err
	}
	path := c.Args().First()
	m, err := readManifest(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	resolve := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}

	for _, j := range m.Jobs {
		cfg := base
		if j.Parameters != "" {
			if cfg.Params, err = applyCustomParameter(cfg.Params, j.Parameters); err != nil {
				return fmt.Errorf("job %q: %w", j.Name, err)
			}
		}
		if err := cfg.Params.Validate(); err != nil {
			return fmt.Errorf("job %q: %w", j.Name, err)
		}
		f := cfg.filter()
		in, err := os.Open(resolve(j.Input))
		if err != nil {
			return fmt.Errorf("job %q: %w", j.Name, err)
		}
		err = writeFile(resolve(j.Output), func(w io.Writer) error {
			return dashStream(in, w, f, outputOptions{svg: j.SVG, precision: cfg.Precision})
		})
		in.Close()
		if err != nil {
			return fmt.Errorf("job %q: %w", j.Name, err)
		}
		dashoutline.Logger().Info("finished job", "name", j.Name, "output", j.Output)
		fmt.Fprintf(c.App.Writer, "%s: %s\n", j.Name, f.CustomParameter())
	}
	return nil
}
