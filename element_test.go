package dashoutline

import (
	"errors"
	"slices"
	"testing"
)

func TestOutlineFromElements(t *testing.T) {
	els := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(10, 0)),
		CubicTo(Pt(15, 0), Pt(20, 5), Pt(20, 10)),
		ClosePath(),
		// Continues from the closed subpath's start.
		LineTo(Pt(0, 20)),
		MoveTo(Pt(50, 50)),
		MoveTo(Pt(60, 60)),
		LineTo(Pt(70, 60)),
		LineTo(Pt(60, 60)),
		ClosePath(),
	}
	got, err := OutlineFromElements(slices.Values(els))
	if err != nil {
		t.Fatal(err)
	}
	want := Outline{
		{
			Line{Pt(0, 0), Pt(10, 0)}.Seg(),
			CubicBez{Pt(10, 0), Pt(15, 0), Pt(20, 5), Pt(20, 10)}.Seg(),
			Line{Pt(20, 10), Pt(0, 0)}.Seg(),
		},
		polyline(Pt(0, 0), Pt(0, 20)),
		// Already ends at its start, no closing line.
		polyline(Pt(60, 60), Pt(70, 60), Pt(60, 60)),
	}
	diff(t, want, got)

	// Round trip through elements.
	again, err := OutlineFromElements(got.Elements())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, again)
}

func TestOutlineFromElementsErrors(t *testing.T) {
	for _, els := range [][]PathElement{
		{LineTo(Pt(1, 1))},
		{ClosePath()},
		{MoveTo(Pt(0, 0)), {Kind: 42}},
	} {
		if _, err := OutlineFromElements(slices.Values(els)); !errors.Is(err, ErrSyntax) {
			t.Errorf("%v: got error %v, want ErrSyntax", els, err)
		}
	}
}

func TestPathElementEndPoint(t *testing.T) {
	pt, ok := CubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 3)).EndPoint()
	diff(t, true, ok)
	diff(t, Pt(3, 3), pt)
	_, ok = ClosePath().EndPoint()
	diff(t, false, ok)
}
