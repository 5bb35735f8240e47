package dashoutline

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Path is a single contour: a sequence of segments where each segment starts
// where the previous one ends. A path is closed when it ends where it starts.
//
// Functions in this package never modify a Path they are given. Those that
// derive new paths, such as [Path.WithPrefix] and [SplitAtLength], return
// paths with their own storage.
type Path []Segment

// Length returns the sum of the lengths of the path's segments.
func (p Path) Length(precision float64) float64 {
	var sum float64
	for _, seg := range p {
		sum += seg.Length(precision)
	}
	return sum
}

// Start returns the path's first point. The path must not be empty.
func (p Path) Start() Point { return p[0].Start() }

// End returns the path's last point. The path must not be empty.
func (p Path) End() Point { return p[len(p)-1].End() }

// Closed reports whether the path ends at its start point.
func (p Path) Closed() bool {
	return len(p) > 0 && p.Start() == p.End()
}

// WithPrefix returns a copy of the first n segments of p.
func (p Path) WithPrefix(n int) Path {
	n = min(max(n, 0), len(p))
	out := make(Path, n)
	copy(out, p[:n])
	return out
}

// WithAppended returns a copy of p with segs appended.
func (p Path) WithAppended(segs ...Segment) Path {
	out := make(Path, 0, len(p)+len(segs))
	out = append(out, p...)
	return append(out, segs...)
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Reverse returns a new path that traverses p in the opposite direction.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, seg := range p {
		out[len(p)-1-i] = seg.Reverse()
	}
	return out
}

// checkFinite returns an error if a point or the length of p isn't finite.
// Such paths can't be measured, so they can't be dashed either.
func (p Path) checkFinite(precision float64) error {
	for i, seg := range p {
		if !seg.isFinite() {
			return fmt.Errorf("%w: segment %d has non-finite coordinates", ErrInvalidParam, i)
		}
	}
	if l := p.Length(precision); math.IsInf(l, 0) || math.IsNaN(l) {
		return fmt.Errorf("%w: length %g", ErrInvalidParam, l)
	}
	return nil
}

func (p Path) Transform(aff Affine) Path {
	out := make(Path, len(p))
	for i, seg := range p {
		out[i] = seg.Transform(aff)
	}
	return out
}

// Elements returns the path as path elements. Closed paths end with a
// [ClosePath] element.
func (p Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(p) == 0 {
			return
		}
		if !yield(MoveTo(p.Start())) {
			return
		}
		for _, seg := range p {
			if !yield(seg.PathElement()) {
				return
			}
		}
		if p.Closed() {
			yield(ClosePath())
		}
	}
}

// Outline is a set of independent paths making up one shape, such as a glyph.
type Outline []Path

// Clone returns a deep copy of o.
func (o Outline) Clone() Outline {
	out := make(Outline, len(o))
	for i, p := range o {
		out[i] = p.Clone()
	}
	return out
}

func (o Outline) Transform(aff Affine) Outline {
	out := make(Outline, len(o))
	for i, p := range o {
		out[i] = p.Transform(aff)
	}
	return out
}

// Elements returns the elements of all paths of the outline, in order.
func (o Outline) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, p := range o {
			for el := range p.Elements() {
				if !yield(el) {
					return
				}
			}
		}
	}
}

// SegmentCount returns the number of segments in all paths.
func (o Outline) SegmentCount() int {
	var n int
	for _, p := range o {
		n += len(p)
	}
	return n
}

// ControlBox returns a rectangle that conservatively encloses the outline.
//
// It uses control points directly rather than computing tight bounds for
// curves.
func (o Outline) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for _, p := range o {
		for _, seg := range p {
			addPt(seg.P0)
			addPt(seg.P1)
			if seg.Kind == CubicKind {
				addPt(seg.P2)
				addPt(seg.P3)
			}
		}
	}
	return cbox
}
