package dashoutline

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// FilterName is the name the filter is registered under in custom parameter
// strings.
const FilterName = "DashedOutline"

// Params are the user-facing parameters of the dashed outline filter.
type Params struct {
	// Width of the stroke drawn along each dash.
	StrokeWidth float64 `toml:"strokeWidth" yaml:"strokeWidth"`
	// Length of each dash.
	Dash float64 `toml:"dash" yaml:"dash"`
	// Length of each gap between dashes.
	Gap float64 `toml:"gap" yaml:"gap"`
	// Scale dashes and gaps per path so that a whole number of cycles fits.
	Distribute bool `toml:"distribute" yaml:"distribute"`
	// Position of the stroke relative to the path, in percent of the stroke
	// width. 50 centers the stroke on the path.
	StrokePosition float64 `toml:"strokePosition" yaml:"strokePosition"`
}

// DefaultParams are the parameters used when nothing is configured.
var DefaultParams = Params{
	StrokeWidth:    40,
	Dash:           300,
	Gap:            50,
	Distribute:     false,
	StrokePosition: 50,
}

// CenteredPosition is the stroke position that centers the stroke on the
// path.
const CenteredPosition = 50

// Validate reports an [ErrInvalidParam] error for lengths that aren't
// positive finite numbers.
func (p Params) Validate() error {
	check := func(name string, v float64) error {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidParam, name, v)
		}
		return nil
	}
	if err := check("strokeWidth", p.StrokeWidth); err != nil {
		return err
	}
	if err := check("dash", p.Dash); err != nil {
		return err
	}
	if err := check("gap", p.Gap); err != nil {
		return err
	}
	if math.IsNaN(p.StrokePosition) || math.IsInf(p.StrokePosition, 0) {
		return fmt.Errorf("%w: strokePosition must be finite, got %g", ErrInvalidParam, p.StrokePosition)
	}
	return nil
}

// Clamp returns p with stroke width, dash and gap raised to at least 1, the
// way interactive input is sanitized.
func (p Params) Clamp() Params {
	p.StrokeWidth = max(1.0, p.StrokeWidth)
	p.Dash = max(1.0, p.Dash)
	p.Gap = max(1.0, p.Gap)
	return p
}

// ApplyOverrides returns p with the named overrides applied. Overrides take
// precedence over the values in p. strokeWidth, dash and gap are parsed as
// floats, distribute and strokePosition as integers.
func (p Params) ApplyOverrides(overrides map[string]string) (Params, error) {
	// Apply in a stable order so that the reported error doesn't depend on map
	// iteration.
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		raw := strings.TrimSpace(overrides[name])
		switch name {
		case "strokeWidth", "dash", "gap":
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return p, fmt.Errorf("%w: %s: %q is not a number", ErrSyntax, name, raw)
			}
			switch name {
			case "strokeWidth":
				p.StrokeWidth = v
			case "dash":
				p.Dash = v
			case "gap":
				p.Gap = v
			}
		case "distribute", "strokePosition":
			v, err := parseInt(raw)
			if err != nil {
				return p, fmt.Errorf("%w: %s: %q is not an integer", ErrSyntax, name, raw)
			}
			if name == "distribute" {
				p.Distribute = v != 0
			} else {
				p.StrokePosition = float64(v)
			}
		default:
			return p, fmt.Errorf("%w: %q", ErrUnknownParam, name)
		}
	}
	return p, nil
}

// parseInt accepts integers as well as floats with an integral value, such as
// "50.0", which is how hosts tend to serialize numbers.
func parseInt(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, strconv.ErrSyntax
	}
	return int(f), nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// CustomParameter returns the single-line summary of p used by export
// tooling:
//
//	DashedOutline; strokeWidth:40; dash:300; gap:50; distribute:0; strokePosition:50
//
// Values are truncated to integers. Field names and order are stable.
func (p Params) CustomParameter(filterName string) string {
	s := fmt.Sprintf("%s; strokeWidth:%d; dash:%d; gap:%d; distribute:%d; strokePosition:%d",
		filterName,
		int(p.StrokeWidth),
		int(p.Dash),
		int(p.Gap),
		boolInt(p.Distribute),
		int(p.StrokePosition),
	)
	// No-op with integer fields; kept so the string matches the plugin's format.
	return strings.ReplaceAll(s, ".0;", ";")
}

// SimpleCustomParameter returns the summary of the simple filter variant,
// which only knows stroke width, dash and gap.
func (p Params) SimpleCustomParameter(filterName string) string {
	return fmt.Sprintf("%s; strokeWidth:%d; dash:%d; gap:%d",
		filterName,
		int(p.StrokeWidth),
		int(p.Dash),
		int(p.Gap),
	)
}

// ParseCustomParameter splits a custom parameter string, as produced by
// [Params.CustomParameter], into the filter name and its named values. The
// values can be passed to [Params.ApplyOverrides].
func ParseCustomParameter(s string) (string, map[string]string, error) {
	fields := strings.Split(s, ";")
	name := strings.TrimSpace(fields[0])
	if name == "" {
		return "", nil, fmt.Errorf("%w: missing filter name in %q", ErrSyntax, s)
	}
	values := make(map[string]string, len(fields)-1)
	for _, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		key, value, ok := strings.Cut(field, ":")
		if !ok {
			return "", nil, fmt.Errorf("%w: field %q has no value", ErrSyntax, field)
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return name, values, nil
}
