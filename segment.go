package dashoutline

import "fmt"

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case CubicKind:
		return "Cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one piece of a [Path]. This type acts as a tagged union of [Line]
// and [CubicBez]; the kind is fixed at construction. Lines only use P0 and P1.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg Segment) Line() Line { return Line{seg.P0, seg.P1} }

// Cubic returns the cubic Bézier represented by this segment. This is only valid when
// Kind == CubicKind.
func (seg Segment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

func invalidKind(k SegmentKind) string {
	return fmt.Sprintf("invalid Segment kind %v", k)
}

func (seg Segment) Start() Point {
	return seg.P0
}

func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case CubicKind:
		return seg.P3
	default:
		panic(invalidKind(seg.Kind))
	}
}

// SplitAt splits the segment at parameter t ∈ [0, 1]. Both halves keep the
// segment's kind, and the first half ends where the second begins.
func (seg Segment) SplitAt(t float64) (Segment, Segment) {
	switch seg.Kind {
	case LineKind:
		a, b := seg.Line().SplitAt(t)
		return a.Seg(), b.Seg()
	case CubicKind:
		a, b := seg.Cubic().SplitAt(t)
		return a.Seg(), b.Seg()
	default:
		panic(invalidKind(seg.Kind))
	}
}

// Length returns the exact length of a line or the estimated length of a
// cubic, see [CubicBez.Length].
func (seg Segment) Length(precision float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Length()
	case CubicKind:
		return seg.Cubic().Length(precision)
	default:
		panic(invalidKind(seg.Kind))
	}
}

// Tangents returns the directions at the start and end of the segment.
func (seg Segment) Tangents() (Vec2, Vec2) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangents()
	case CubicKind:
		return seg.Cubic().Tangents()
	default:
		panic(invalidKind(seg.Kind))
	}
}

func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Transform(aff).Seg()
	case CubicKind:
		return seg.Cubic().Transform(aff).Seg()
	default:
		panic(invalidKind(seg.Kind))
	}
}

// Round returns the segment with all of its points rounded to integers.
func (seg Segment) Round() Segment {
	switch seg.Kind {
	case LineKind:
		return Line{seg.P0.Round(), seg.P1.Round()}.Seg()
	case CubicKind:
		return CubicBez{seg.P0.Round(), seg.P1.Round(), seg.P2.Round(), seg.P3.Round()}.Seg()
	default:
		panic(invalidKind(seg.Kind))
	}
}

// Reverse returns a new Segment describing the same curve as this one, but with the
// points reversed.
func (seg Segment) Reverse() Segment {
	switch seg.Kind {
	case LineKind:
		seg.P0, seg.P1 = seg.P1, seg.P0
		return seg
	case CubicKind:
		seg.P0, seg.P1, seg.P2, seg.P3 = seg.P3, seg.P2, seg.P1, seg.P0
		return seg
	default:
		panic(invalidKind(seg.Kind))
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg Segment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		panic(invalidKind(seg.Kind))
	}
}

// paramAtLength returns the parameter at which the part of seg before it has
// the given length. Lines are solved exactly, cubics by bisection.
func (seg Segment) paramAtLength(l, precision float64) float64 {
	total := seg.Length(precision)
	switch {
	case l <= 0 || total == 0:
		return 0
	case l >= total:
		return 1
	}
	if seg.Kind == LineKind {
		return l / total
	}
	lo, hi := 0.0, 1.0
	for range 40 {
		mid := 0.5 * (lo + hi)
		first, _ := seg.SplitAt(mid)
		if first.Length(precision) < l {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo < 1e-9 {
			break
		}
	}
	return 0.5 * (lo + hi)
}

// isFinite reports whether all of the segment's points are finite.
func (seg Segment) isFinite() bool {
	for _, p := range [...]Point{seg.P0, seg.P1, seg.P2, seg.P3} {
		if p.IsInf() || p.IsNaN() {
			return false
		}
	}
	return true
}

// withStart returns the segment moved to start at pt. Control points are left
// alone.
func (seg Segment) withStart(pt Point) Segment {
	seg.P0 = pt
	return seg
}

// withEnd returns the segment moved to end at pt.
func (seg Segment) withEnd(pt Point) Segment {
	switch seg.Kind {
	case LineKind:
		seg.P1 = pt
	case CubicKind:
		seg.P3 = pt
	default:
		panic(invalidKind(seg.Kind))
	}
	return seg
}
