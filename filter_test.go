package dashoutline

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// recorder records the options it's called with and passes outlines through.
type recorder struct {
	offsets []OffsetOptions
	rounds  []RoundOptions
	err     error
}

func (r *recorder) Offset(o Outline, opts OffsetOptions) (Outline, error) {
	r.offsets = append(r.offsets, opts)
	return o.Clone(), r.err
}

func (r *recorder) RoundCorners(o Outline, opts RoundOptions) (Outline, error) {
	r.rounds = append(r.rounds, opts)
	return o.Clone(), r.err
}

func TestFilterCalls(t *testing.T) {
	line := Outline{polyline(Pt(0, 0), Pt(1000, 0))}

	rec := &recorder{}
	f := NewFilter(DefaultParams)
	f.Offsetter = rec
	f.Rounder = rec
	out, err := f.Apply(line)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3, len(out))
	diff(t, []OffsetOptions{{
		OffsetX:        20,
		OffsetY:        20,
		MakeStroke:     true,
		Position:       0.5,
		StartCap:       ButtCap,
		EndCap:         ButtCap,
		KeepCompatible: true,
	}}, rec.offsets)
	diff(t, []RoundOptions{{Radius: 20, VisualCorrection: true, SnapToGrid: true}}, rec.rounds)

	// Off-center strokes move the outline first.
	rec = &recorder{}
	p := DefaultParams
	p.StrokePosition = 100
	f = NewFilter(p)
	f.Offsetter = rec
	f.Rounder = rec
	if _, err := f.Apply(line); err != nil {
		t.Fatal(err)
	}
	diff(t, 2, len(rec.offsets))
	diff(t, OffsetOptions{OffsetX: 20, OffsetY: 20, KeepCompatible: true}, rec.offsets[0])
	diff(t, true, rec.offsets[1].MakeStroke)

	// Thin strokes are clamped.
	rec = &recorder{}
	p = DefaultParams
	p.StrokeWidth = 0.5
	f = NewFilter(p)
	f.Offsetter = rec
	f.Rounder = rec
	if _, err := f.Apply(line); err != nil {
		t.Fatal(err)
	}
	diff(t, 0.5, rec.offsets[0].OffsetX)
	diff(t, "DashedOutline; strokeWidth:0; dash:300; gap:50; distribute:0; strokePosition:50", f.CustomParameter())
}

func TestFilterErrors(t *testing.T) {
	line := Outline{polyline(Pt(0, 0), Pt(1000, 0))}

	p := DefaultParams
	p.Dash = 0
	if _, err := NewFilter(p).Apply(line); !errors.Is(err, ErrInvalidParam) {
		t.Errorf("got error %v, want ErrInvalidParam", err)
	}

	for _, o := range []Outline{
		{polyline(Pt(-1e308, 0), Pt(1e308, 0))},
		{line[0], {CubicBez{Pt(0, 0), Pt(math.NaN(), 0), Pt(10, 10), Pt(400, 0)}.Seg()}},
	} {
		if _, err := NewFilter(DefaultParams).Apply(o); !errors.Is(err, ErrInvalidParam) {
			t.Errorf("got error %v for non-finite outline, want ErrInvalidParam", err)
		}
	}

	errBoom := errors.New("boom")
	f := NewFilter(DefaultParams)
	f.Offsetter = &recorder{err: errBoom}
	if _, err := f.Apply(line); !errors.Is(err, errBoom) {
		t.Errorf("got error %v, want %v", err, errBoom)
	}

	f = NewFilter(DefaultParams)
	f.Rounder = &recorder{err: errBoom}
	if _, err := f.Apply(line); !errors.Is(err, errBoom) {
		t.Errorf("got error %v, want %v", err, errBoom)
	}

	f = NewFilter(DefaultParams)
	f.Offsetter = Stroker{}
	f.Rounder = Rounder{}
	if _, err := f.Apply(line); err != nil {
		t.Errorf("zero value stroker and rounder: %s", err)
	}
}

func TestFilterLine(t *testing.T) {
	line := Outline{polyline(Pt(0, 0), Pt(1000, 0))}
	orig := line.Clone()
	out, err := NewFilter(DefaultParams).Apply(line)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, orig, line)
	diff(t, 3, len(out))

	approx := cmpopts.EquateApprox(0, 1e-9)
	for i, p := range out {
		if !p.Closed() {
			t.Errorf("dash %d isn't closed", i)
		}
		assertContiguous(t, p)
		for _, seg := range p {
			if seg != seg.Round() {
				t.Errorf("dash %d: segment %v isn't on the grid", i, seg)
			}
		}
		// Butt caps turn round, so the dash doesn't grow past its ends.
		x0 := float64(i * 350)
		diff(t, Rect{x0, -20, x0 + 300, 20}, Outline{p}.ControlBox(), approx)
	}
}

func TestFilterStrokePosition(t *testing.T) {
	square := Outline{polygon(Pt(0, 0), Pt(400, 0), Pt(400, 400), Pt(0, 400))}
	tests := []struct {
		position float64
		x0       float64
	}{
		{50, -10},
		{100, -20},
		{0, 0},
	}
	for _, tt := range tests {
		p := Params{StrokeWidth: 20, Dash: 100, Gap: 100, StrokePosition: tt.position}
		out, err := NewFilter(p).Apply(square)
		if err != nil {
			t.Fatal(err)
		}
		if len(out) == 0 {
			t.Fatalf("position %g: no dashes", tt.position)
		}
		diff(t, tt.x0, out.ControlBox().X0, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestSimpleFilter(t *testing.T) {
	p := DefaultParams
	p.Distribute = true
	p.StrokePosition = 0
	f := NewSimpleFilter(p)
	diff(t, false, f.Params.Distribute)
	diff(t, float64(CenteredPosition), f.Params.StrokePosition)
	diff(t, "DashedOutline; strokeWidth:40; dash:300; gap:50", f.CustomParameter())

	out, err := f.Apply(Outline{polyline(Pt(0, 0), Pt(1000, 0))})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3, len(out))
}

func TestFilterLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := NewFilter(DefaultParams).Apply(Outline{polyline(Pt(0, 0), Pt(1000, 0))}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`msg="dashed path" segments=1`,
		`msg="dashed outline" paths=1 dashes=3`,
		`msg="applied filter"`,
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log doesn't contain %s:\n%s", want, buf.String())
		}
	}

	SetLogger(nil)
	buf.Reset()
	if _, err := NewFilter(DefaultParams).Apply(Outline{polyline(Pt(0, 0), Pt(1000, 0))}); err != nil {
		t.Fatal(err)
	}
	diff(t, "", buf.String())
}
