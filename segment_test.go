package dashoutline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegmentDispatch(t *testing.T) {
	l := Line{Pt(0, 0), Pt(3, 4)}.Seg()
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}.Seg()

	diff(t, 5.0, l.Length(DefaultPrecision))
	diff(t, 3.0, c.Length(DefaultPrecision))
	diff(t, Pt(3, 4), l.End())
	diff(t, Pt(3, 0), c.End())

	a, b := c.SplitAt(0.5)
	diff(t, CubicKind, a.Kind)
	diff(t, CubicKind, b.Kind)
	diff(t, Pt(1.5, 0), a.End(), cmpopts.EquateApprox(0, 1e-12))

	a, b = l.SplitAt(0.5)
	diff(t, Line{Pt(0, 0), Pt(1.5, 2)}.Seg(), a)
	diff(t, Line{Pt(1.5, 2), Pt(3, 4)}.Seg(), b)
}

func TestSegmentReverse(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 4), Pt(5, 6)}.Seg()
	diff(t, CubicBez{Pt(5, 6), Pt(3, 4), Pt(1, 2), Pt(0, 0)}.Seg(), c.Reverse())
	diff(t, c, c.Reverse().Reverse())
	diff(t, Line{Pt(1, 1), Pt(0, 0)}.Seg(), Line{Pt(0, 0), Pt(1, 1)}.Seg().Reverse())
}

func TestSegmentParamAtLength(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}.Seg()
	diff(t, 0.25, l.paramAtLength(2.5, DefaultPrecision))
	diff(t, 0.0, l.paramAtLength(-1, DefaultPrecision))
	diff(t, 1.0, l.paramAtLength(11, DefaultPrecision))

	c := Circle{Pt(0, 0), 100}.Path(0.1)[0]
	half := c.Length(0.01) / 2
	ts := c.paramAtLength(half, 0.01)
	// The quarter circle is symmetric, so half its length is at t=0.5.
	if d := ts - 0.5; d > 1e-3 || d < -1e-3 {
		t.Errorf("got t=%v, want 0.5", ts)
	}

	zero := Line{Pt(1, 1), Pt(1, 1)}.Seg()
	diff(t, 0.0, zero.paramAtLength(1, DefaultPrecision))
}

func TestSegmentInvalidKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an invalid segment kind")
		}
	}()
	Segment{}.Length(DefaultPrecision)
}
