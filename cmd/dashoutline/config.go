package main

import (
	"fmt"
	"os"

	"github.com/mekkablue/dashoutline"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v2"
)

// config is the contents of a TOML configuration file:
//
//	strokeWidth = 40
//	dash = 300
//	gap = 50
//	distribute = false
//	strokePosition = 50
//	simple = false
//	precision = 3
type config struct {
	dashoutline.Params
	// Use the simple filter variant.
	Simple bool `toml:"simple"`
	// Maximum number of decimals in written path data.
	Precision int `toml:"precision"`
}

func defaultConfig() config {
	return config{
		Params:    dashoutline.DefaultParams,
		Precision: 3,
	}
}

// loadConfig reads the file at path on top of cfg. Keys missing from the file
// keep their values.
func loadConfig(path string, cfg config) (config, error) {
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "TOML file with filter parameters",
		},
		&cli.StringFlag{
			Name:  "param",
			Usage: `Custom parameter string, such as "DashedOutline; strokeWidth:40; dash:300; gap:50"`,
		},
		&cli.Float64Flag{
			Name:  "stroke-width",
			Usage: "Width of the dashes",
		},
		&cli.Float64Flag{
			Name:  "dash",
			Usage: "Length of the dashes",
		},
		&cli.Float64Flag{
			Name:  "gap",
			Usage: "Length of the gaps between dashes",
		},
		&cli.BoolFlag{
			Name:  "distribute",
			Usage: "Scale dashes and gaps so that whole cycles fit each path",
		},
		&cli.Float64Flag{
			Name:  "stroke-position",
			Usage: "Stroke position in percent of the stroke width, 50 centers the stroke",
		},
		&cli.BoolFlag{
			Name:  "simple",
			Usage: "Use the simple filter variant",
		},
	}
}

// configFromContext merges the configuration sources. Later sources win:
// defaults, the config file, the custom parameter string, explicit flags.
// Valid parameters are then clamped like interactive input.
func configFromContext(c *cli.Context) (config, error) {
	cfg := defaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = loadConfig(path, cfg); err != nil {
			return cfg, err
		}
	}
	if s := c.String("param"); s != "" {
		p, err := applyCustomParameter(cfg.Params, s)
		if err != nil {
			return cfg, err
		}
		cfg.Params = p
	}
	if c.IsSet("stroke-width") {
		cfg.StrokeWidth = c.Float64("stroke-width")
	}
	if c.IsSet("dash") {
		cfg.Dash = c.Float64("dash")
	}
	if c.IsSet("gap") {
		cfg.Gap = c.Float64("gap")
	}
	if c.IsSet("distribute") {
		cfg.Distribute = c.Bool("distribute")
	}
	if c.IsSet("stroke-position") {
		cfg.StrokePosition = c.Float64("stroke-position")
	}
	if c.IsSet("simple") {
		cfg.Simple = c.Bool("simple")
	}
	if err := cfg.Params.Validate(); err != nil {
		return cfg, err
	}
	cfg.Params = cfg.Params.Clamp()
	return cfg, nil
}

// applyCustomParameter applies the values of a custom parameter string to p.
func applyCustomParameter(p dashoutline.Params, s string) (dashoutline.Params, error) {
	name, overrides, err := dashoutline.ParseCustomParameter(s)
	if err != nil {
		return p, err
	}
	if name != dashoutline.FilterName {
		return p, fmt.Errorf("custom parameter is for filter %q, not %q", name, dashoutline.FilterName)
	}
	return p.ApplyOverrides(overrides)
}

func (cfg config) filter() *dashoutline.Filter {
	if cfg.Simple {
		return dashoutline.NewSimpleFilter(cfg.Params)
	}
	return dashoutline.NewFilter(cfg.Params)
}

func filterFromContext(c *cli.Context) (*dashoutline.Filter, error) {
	cfg, err := configFromContext(c)
	if err != nil {
		return nil, err
	}
	return cfg.filter(), nil
}
