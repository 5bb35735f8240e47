package dashoutline

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a drawing command. Elements are how paths are read from and
// written to path data; the algorithms in this package work on [Segment]s.
//
// A valid sequence has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind:
		return el.P0, true
	case LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

// OutlineFromElements converts a sequence of path elements to an outline. Every
// MoveTo starts a new path; ClosePath adds a closing line when the subpath
// doesn't already end at its start. Subpaths without segments are dropped.
func OutlineFromElements(seq iter.Seq[PathElement]) (Outline, error) {
	var (
		out     Outline
		cur     Path
		start   Point
		last    Point
		started bool
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, cur)
		}
		cur = nil
	}
	for el := range seq {
		if el.Kind != MoveToKind && !started {
			return nil, fmt.Errorf("%w: %s before the first MoveTo", ErrSyntax, el)
		}
		switch el.Kind {
		case MoveToKind:
			flush()
			started = true
			start, last = el.P0, el.P0
		case LineToKind:
			cur = append(cur, Line{last, el.P0}.Seg())
			last = el.P0
		case CubicToKind:
			cur = append(cur, CubicBez{last, el.P0, el.P1, el.P2}.Seg())
			last = el.P2
		case ClosePathKind:
			if last != start && len(cur) > 0 {
				cur = append(cur, Line{last, start}.Seg())
			}
			flush()
			// A subpath following ClosePath without a MoveTo starts at the
			// closed subpath's start.
			last = start
		default:
			return nil, fmt.Errorf("%w: invalid element kind %d", ErrSyntax, el.Kind)
		}
	}
	flush()
	return out, nil
}
