package dashoutline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDistributionFactor(t *testing.T) {
	tests := []struct {
		length float64
		want   float64
	}{
		{700, 1},
		{680, 680.0 / 350 / 2},
		// Paths shorter than 0.9 cycles keep their dashes.
		{300, 1},
		{315, 1},
		{320, 320.0 / 350},
		// Halves round to even.
		{875, 1.25},
		{1225, 0.875},
	}
	for _, tt := range tests {
		got := DistributionFactor(tt.length, 300, 50)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DistributionFactor(%g, 300, 50) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func lengths(ps []Path) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Length(DefaultPrecision)
	}
	return out
}

func TestDashPathLine(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	d := Dasher{Params: DefaultParams, Options: DefaultDashOptions}

	p := polyline(Pt(0, 0), Pt(1000, 0))
	// The last dash ends exactly at the end of the line, leaving an empty
	// gap.
	pieces := d.Pieces(p)
	diff(t, 6, len(pieces))
	diff(t, []float64{300, 50, 300, 50, 300, 0}, lengths(pieces), approx)
	dashes := d.DashPath(p)
	diff(t, []float64{300, 300, 300}, lengths(dashes), approx)
	diff(t, Pt(700, 0), dashes[2][0].Start(), approx)

	p = polyline(Pt(0, 0), Pt(1100, 0))
	diff(t, 7, len(d.Pieces(p)))
	diff(t, []float64{300, 300, 300, 50}, lengths(d.DashPath(p)), approx)
}

func TestDashPathDistribute(t *testing.T) {
	params := DefaultParams
	params.Distribute = true
	d := Dasher{Params: params, Options: DefaultDashOptions}

	p := polyline(Pt(0, 0), Pt(680, 0))
	dash := 300 * 680.0 / 700
	diff(t, []float64{dash, dash}, lengths(d.DashPath(p)), cmpopts.EquateApprox(0, 1e-9))

	// Without distribution the second dash is cut short.
	d.Params.Distribute = false
	p = polyline(Pt(0, 0), Pt(630, 0))
	diff(t, []float64{300, 280}, lengths(d.DashPath(p)), cmpopts.EquateApprox(0, 1e-9))
}

func TestDashPathDebris(t *testing.T) {
	params := Params{StrokeWidth: 100, Dash: 300, Gap: 50, StrokePosition: 50}
	d := Dasher{Params: params, Options: SimpleDashOptions}

	diff(t, 0, len(d.DashPath(polyline(Pt(0, 0), Pt(97, 0)))))
	diff(t, 1, len(d.DashPath(polyline(Pt(0, 0), Pt(99, 0)))))

	// Dashes exactly at the threshold are kept.
	d.Params.StrokeWidth = 50
	edge := 50 * debrisRatio
	diff(t, 1, len(d.DashPath(polyline(Pt(0, 0), Pt(edge, 0)))))
}

func TestDashPathTrim(t *testing.T) {
	params := Params{StrokeWidth: 10, Dash: 1000, Gap: 50, StrokePosition: 50}
	d := Dasher{Params: params, Options: DefaultDashOptions}

	p := polyline(Pt(0, 0), Pt(5, 0), Pt(5, 100))
	diff(t, []Path{polyline(Pt(5, 0), Pt(5, 100))}, d.DashPath(p))

	// Both ends are short, and what's left is too short to keep.
	p = polyline(Pt(0, 0), Pt(5, 0), Pt(5, 9), Pt(10, 9))
	diff(t, 0, len(d.DashPath(p)))

	// The simple variant only filters by length.
	d.Options = SimpleDashOptions
	diff(t, 1, len(d.DashPath(p)))

	// Curved ends are never trimmed.
	d.Options = DefaultDashOptions
	p = Path{
		CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}.Seg(),
		Line{Pt(3, 0), Pt(3, 100)}.Seg(),
	}
	diff(t, []Path{p}, d.DashPath(p))
}

func TestDashPathCircle(t *testing.T) {
	params := Params{StrokeWidth: 20, Dash: 100, Gap: 50, StrokePosition: 50}
	d := Dasher{Params: params, Options: DefaultDashOptions}
	p := Circle{Pt(0, 0), 100}.Path(0.1)

	pieces := d.Pieces(p)
	diff(t, 9, len(pieces))
	for i, piece := range pieces {
		assertContiguous(t, piece)
		if i > 0 && pieces[i-1].End() != piece.Start() {
			t.Errorf("piece %d doesn't start where piece %d ends", i, i-1)
		}
	}

	// Splitting cubics overshoots by at most one parameter step.
	dashes := d.DashPath(p)
	diff(t, 4, len(dashes))
	for i, l := range lengths(dashes) {
		if l < 100 || l > 106 {
			t.Errorf("dash %d has length %v, want 100 to 106", i, l)
		}
	}
}

func TestDashPathCircleStart(t *testing.T) {
	circle := Circle{Pt(0, 0), 100}.Path(0.1)
	c := circle.Length(DefaultPrecision)
	params := Params{StrokeWidth: 1, Dash: c / 10, Gap: c / 10, StrokePosition: 50}
	d := Dasher{Params: params, Options: DefaultDashOptions}

	for _, start := range []float64{0, 25, 100, 157.08, 300, 471.24, 600} {
		p := circle
		if head, tail, ok := SplitAtLength(circle, start, SplitOptions{}); ok {
			p = append(tail.Clone(), head...)
		}
		assertContiguous(t, p)

		dashes := d.DashPath(p)
		if len(dashes) != 5 {
			t.Errorf("start %g: got %d dashes, want 5", start, len(dashes))
			continue
		}
		// Each split may overshoot by one parameter step of a quarter circle.
		for i, l := range lengths(dashes) {
			if l > c/10+6 {
				t.Errorf("start %g: dash %d has length %v, want at most %v", start, i, l, c/10+6)
			}
		}
	}
}

func TestDashPathNonFinite(t *testing.T) {
	d := Dasher{Params: DefaultParams, Options: DefaultDashOptions}
	nan := math.NaN()
	for _, p := range []Path{
		polyline(Pt(-1e308, 0), Pt(1e308, 0)),
		{CubicBez{Pt(0, 0), Pt(nan, 0), Pt(10, 10), Pt(400, 0)}.Seg()},
	} {
		if n := len(d.Pieces(p)); n != 1 {
			t.Errorf("%v: got %d pieces, want 1", p, n)
		}
	}
}

func TestDashOutlineConnects(t *testing.T) {
	params := Params{StrokeWidth: 20, Dash: 250, Gap: 100, StrokePosition: 50}
	d := Dasher{Params: params, Options: DefaultDashOptions}
	square := polygon(Pt(0, 0), Pt(400, 0), Pt(400, 400), Pt(0, 400))
	orig := square.Clone()

	// The last dash runs into the start point and continues as the first.
	out := d.DashOutline(Outline{square})
	diff(t, 4, len(out))
	approx := cmpopts.EquateApprox(0, 1e-9)
	diff(t, 450.0, out[0].Length(DefaultPrecision), approx)
	diff(t, Pt(0, 200), out[0].Start(), approx)
	diff(t, Pt(250, 0), out[0].End(), approx)
	for _, p := range out {
		assertContiguous(t, p)
	}
	diff(t, orig, square)
}
