package dashoutline

import (
	"log/slog"
	"math"
)

// debrisRatio is the fraction of the stroke width below which trimmed line
// ends and whole dashes are discarded.
const debrisRatio = 0.98

// DistributionFactor returns the factor by which dash and gap are scaled so
// that a whole number of dash and gap cycles fits a path of the given length.
// Paths shorter than 0.9 cycles aren't scaled.
func DistributionFactor(length, dash, gap float64) float64 {
	ratio := length / (dash + gap)
	if !(ratio > 0.9) || math.IsInf(ratio, 0) {
		return 1
	}
	return ratio / math.RoundToEven(ratio)
}

// DashOptions configures a [Dasher].
type DashOptions struct {
	// Flatness tolerance for length measurements. Zero selects
	// [DefaultPrecision].
	Precision float64
	// Steps of the parameter search when splitting cubics. Zero selects
	// [DefaultSplitSteps].
	SplitSteps int
	// Drop straight end segments shorter than the debris threshold from each
	// dash before the length filter runs. These are the short corner artifacts
	// left over from splitting.
	TrimCorners bool
}

// DefaultDashOptions are the options of the full filter.
var DefaultDashOptions = DashOptions{
	Precision:   DefaultPrecision,
	SplitSteps:  DefaultSplitSteps,
	TrimCorners: true,
}

// SimpleDashOptions are the options of the simple filter variant, which
// searches cubics more coarsely and doesn't trim dash ends.
var SimpleDashOptions = DashOptions{
	Precision:   DefaultPrecision,
	SplitSteps:  SimpleSplitSteps,
	TrimCorners: false,
}

// A Dasher cuts paths into dashes.
type Dasher struct {
	Params  Params
	Options DashOptions
}

func (d Dasher) splitOptions() SplitOptions {
	return SplitOptions{Precision: d.Options.Precision, Steps: d.Options.SplitSteps}
}

func (d Dasher) precision() float64 {
	if !(d.Options.Precision > 0) {
		return DefaultPrecision
	}
	return d.Options.Precision
}

// Factor returns the factor by which dash and gap are scaled for p. It is 1
// unless the Distribute parameter is set.
func (d Dasher) Factor(p Path) float64 {
	if !d.Params.Distribute {
		return 1
	}
	return DistributionFactor(p.Length(d.precision()), d.Params.Dash, d.Params.Gap)
}

// Pieces cuts p into alternating dash and gap pieces, starting with a dash.
// The last piece is whatever remained of p when it couldn't supply a full
// dash or gap.
//
// Pieces requires positive dash and gap lengths; see [Params.Validate].
func (d Dasher) Pieces(p Path) []Path {
	if len(p) == 0 {
		return nil
	}
	factor := d.Factor(p)
	lengths := [2]float64{d.Params.Dash * factor, d.Params.Gap * factor}
	opts := d.splitOptions()

	var pieces []Path
	for rest, ok := p, true; ok; {
		var head Path
		head, rest, ok = SplitAtLength(rest, lengths[len(pieces)%2], opts)
		pieces = append(pieces, head)
	}
	return pieces
}

// trim drops straight end segments shorter than the debris threshold. Both
// ends are judged on the untrimmed piece.
func (d Dasher) trim(piece Path, threshold float64) Path {
	start, end := 0, len(piece)
	if first := piece[0]; first.Kind == LineKind && first.Line().Length() < threshold {
		start++
	}
	if last := piece[len(piece)-1]; last.Kind == LineKind && last.Line().Length() < threshold {
		end--
	}
	if end <= start {
		return nil
	}
	return piece[start:end]
}

// DashPath returns the dashes of p that survive trimming and the debris
// filter. Gaps are discarded.
func (d Dasher) DashPath(p Path) []Path {
	pieces := d.Pieces(p)
	threshold := d.Params.StrokeWidth * debrisRatio
	prec := d.precision()

	var out []Path
	for i := 0; i < len(pieces); i += 2 {
		piece := pieces[i]
		if len(piece) == 0 {
			continue
		}
		if d.Options.TrimCorners {
			piece = d.trim(piece, threshold)
		}
		if piece.Length(prec) >= threshold {
			out = append(out, piece.Clone())
		}
	}
	Logger().Debug("dashed path",
		slog.Int("segments", len(p)),
		slog.Int("pieces", len(pieces)),
		slog.Int("dashes", len(out)),
	)
	return out
}

// DashOutline dashes every path of o and reconnects dashes whose ends meet,
// such as the dash running through the start point of a closed contour.
func (d Dasher) DashOutline(o Outline) Outline {
	var out Outline
	for _, p := range o {
		out = append(out, d.DashPath(p)...)
	}
	return ConnectOpenPaths(out, connectTolerance)
}
