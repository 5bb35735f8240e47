package dashoutline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-12
	if d := math.Abs(l.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
	if got := l.Seg().Length(DefaultPrecision); got != l.Length() {
		t.Errorf("segment length %g differs from line length %g", got, l.Length())
	}
}

func TestLineSplitAt(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 20)}
	a, b := l.SplitAt(0.25)
	diff(t, Line{Pt(0, 0), Pt(2.5, 5)}, a, cmpopts.EquateApprox(0, 1e-12))
	diff(t, Line{Pt(2.5, 5), Pt(10, 20)}, b, cmpopts.EquateApprox(0, 1e-12))
	if a.End() != b.Start() {
		t.Errorf("halves don't meet: %s and %s", a.End(), b.Start())
	}

	// The ends produce a degenerate piece and the original line.
	a, b = l.SplitAt(0)
	diff(t, Line{Pt(0, 0), Pt(0, 0)}, a)
	diff(t, l, b)
	a, b = l.SplitAt(1)
	diff(t, l, a)
	diff(t, Line{Pt(10, 20), Pt(10, 20)}, b)
}
