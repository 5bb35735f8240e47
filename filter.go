package dashoutline

import (
	"fmt"
	"log/slog"
)

// Filter turns outlines into dashed strokes: the outline is cut into dashes,
// each dash is stroked with butt caps, and the corners of the strokes are
// rounded by half the stroke width, which turns the butt caps into round
// ones.
type Filter struct {
	Params  Params
	Options DashOptions
	// Stroke widths below MinStrokeWidth are raised to it.
	MinStrokeWidth float64
	// Offsetter and Rounder default to [DefaultStroker] and
	// [DefaultRounder] when nil.
	Offsetter Offsetter
	Rounder   CornerRounder
}

// NewFilter returns the full filter for the given parameters.
func NewFilter(p Params) *Filter {
	return &Filter{
		Params:         p,
		Options:        DefaultDashOptions,
		MinStrokeWidth: 1,
		Offsetter:      DefaultStroker,
		Rounder:        DefaultRounder,
	}
}

// NewSimpleFilter returns the simple variant of the filter. It always
// centers the stroke, doesn't distribute dashes, searches cubics more
// coarsely, doesn't trim dash ends and doesn't clamp the stroke width.
func NewSimpleFilter(p Params) *Filter {
	p.Distribute = false
	p.StrokePosition = CenteredPosition
	return &Filter{
		Params:    p,
		Options:   SimpleDashOptions,
		Offsetter: DefaultStroker,
		Rounder:   DefaultRounder,
	}
}

// CustomParameter returns the custom parameter string describing the
// filter's parameters.
func (f *Filter) CustomParameter() string {
	if f.Options.TrimCorners {
		return f.Params.CustomParameter(FilterName)
	}
	return f.Params.SimpleCustomParameter(FilterName)
}

// Apply returns the dashed version of o. o isn't modified. Paths with
// non-finite coordinates or lengths are rejected with [ErrInvalidParam].
//
// Errors from the offsetter and rounder are returned wrapped; test for them
// with [errors.Is].
func (f *Filter) Apply(o Outline) (Outline, error) {
	p := f.Params
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.StrokeWidth = max(p.StrokeWidth, f.MinStrokeWidth)
	prec := Dasher{Options: f.Options}.precision()
	for i, path := range o {
		if err := path.checkFinite(prec); err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
	}
	off := f.Offsetter
	if off == nil {
		off = DefaultStroker
	}
	rounder := f.Rounder
	if rounder == nil {
		rounder = DefaultRounder
	}
	log := Logger()

	work := o
	if p.StrokePosition != CenteredPosition {
		// Move the outline so that a centered stroke ends up where the stroke
		// position asks for it.
		d := p.StrokeWidth * (p.StrokePosition - CenteredPosition) / 100
		var err error
		work, err = off.Offset(o, OffsetOptions{
			OffsetX:        d,
			OffsetY:        d,
			KeepCompatible: true,
		})
		if err != nil {
			return nil, fmt.Errorf("offsetting outline: %w", err)
		}
		log.Debug("moved outline for stroke position",
			slog.Float64("position", p.StrokePosition),
			slog.Float64("offset", d),
		)
	}

	dasher := Dasher{Params: p, Options: f.Options}
	dashes := dasher.DashOutline(work)
	log.Debug("dashed outline",
		slog.Int("paths", len(work)),
		slog.Int("dashes", len(dashes)),
	)

	half := p.StrokeWidth / 2
	stroked, err := off.Offset(dashes, OffsetOptions{
		OffsetX:        half,
		OffsetY:        half,
		MakeStroke:     true,
		Position:       0.5,
		StartCap:       ButtCap,
		EndCap:         ButtCap,
		KeepCompatible: true,
	})
	if err != nil {
		return nil, fmt.Errorf("stroking dashes: %w", err)
	}

	rounded, err := rounder.RoundCorners(stroked, RoundOptions{
		Radius:           half,
		VisualCorrection: true,
		SnapToGrid:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("rounding corners: %w", err)
	}
	log.Debug("applied filter",
		slog.String("parameters", f.CustomParameter()),
		slog.Int("segments", rounded.SegmentCount()),
	)
	return rounded, nil
}
