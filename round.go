package dashoutline

import (
	"fmt"
	"math"
)

// RoundOptions configures a [CornerRounder].
type RoundOptions struct {
	// Radius of the rounded corners.
	Radius float64
	// Only round selected points.
	OnlySelected bool
	// Cut every corner at the radius, regardless of its angle, instead of
	// fitting a true circle of the radius. This keeps acute corners from
	// eating into their segments and obtuse ones from vanishing.
	VisualCorrection bool
	// Round all coordinates of the result to integers.
	SnapToGrid bool
}

// A CornerRounder replaces the corners of outlines with curves.
type CornerRounder interface {
	RoundCorners(o Outline, opts RoundOptions) (Outline, error)
}

// Rounder is the default [CornerRounder]. It replaces each corner with a
// cubic fillet tangent to both adjacent segments. Corners are never cut
// deeper than half of either adjacent segment, so neighboring fillets don't
// overlap.
//
// Outlines carry no selection; Rounder returns [ErrUnsupported] for
// OnlySelected.
type Rounder struct {
	// Flatness tolerance for the length measurements used when trimming
	// segments.
	Precision float64
	// Corners turning by less than MinAngle radians are left alone. This
	// skips the shallow corners of flattened curves.
	MinAngle float64
}

// DefaultRounder is the rounder used by [NewFilter].
var DefaultRounder = Rounder{
	Precision: 0.1,
	MinAngle:  math.Pi / 12,
}

var _ CornerRounder = Rounder{}

// RoundCorners implements CornerRounder.
func (r Rounder) RoundCorners(o Outline, opts RoundOptions) (Outline, error) {
	if opts.OnlySelected {
		return nil, fmt.Errorf("%w: rounding selected points", ErrUnsupported)
	}
	if math.IsNaN(opts.Radius) || math.IsInf(opts.Radius, 0) {
		return nil, fmt.Errorf("%w: radius %g", ErrInvalidParam, opts.Radius)
	}
	if !(r.Precision > 0) {
		r.Precision = DefaultRounder.Precision
	}

	out := make(Outline, 0, len(o))
	for _, p := range o {
		if opts.Radius > 0 {
			p = r.roundPath(p, opts)
		} else {
			p = p.Clone()
		}
		if opts.SnapToGrid {
			p = snapPath(p)
		}
		if len(p) > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// corner describes the fillet at the end of a segment.
type corner struct {
	// Distance from the corner at which the fillet starts and ends.
	cut float64
	// Absolute turning angle.
	angle float64
	// Directions into and out of the corner, used where trimming leaves
	// nothing of a segment.
	in, out Vec2
}

func (r Rounder) roundPath(p Path, opts RoundOptions) Path {
	segs := make(Path, 0, len(p))
	lengths := make([]float64, 0, len(p))
	for _, seg := range p {
		if l := seg.Length(r.Precision); l > 0 {
			segs = append(segs, seg)
			lengths = append(lengths, l)
		}
	}
	n := len(segs)
	if n == 0 {
		return nil
	}
	closed := p.Closed()

	// corners[i] is the corner between segs[i] and the segment after it.
	corners := make([]corner, n)
	for i := range segs {
		j := i + 1
		if j == n {
			if !closed {
				break
			}
			j = 0
		}
		_, ta := segs[i].Tangents()
		tb, _ := segs[j].Tangents()
		if ta.Hypot2() == 0 || tb.Hypot2() == 0 {
			continue
		}
		angle := math.Abs(math.Atan2(ta.Cross(tb), ta.Dot(tb)))
		if angle < r.MinAngle || angle == 0 {
			continue
		}
		cut := opts.Radius
		if !opts.VisualCorrection {
			cut = opts.Radius * math.Tan(angle/2)
		}
		cut = min(cut, lengths[i]/2, lengths[j]/2)
		corners[i] = corner{cut: cut, angle: angle, in: ta, out: tb}
	}

	// Trim each segment by the cuts of the corners at both of its ends.
	trimmed := make(Path, n)
	for i, seg := range segs {
		var startCut float64
		if i > 0 {
			startCut = corners[i-1].cut
		} else if closed {
			startCut = corners[n-1].cut
		}
		endCut := corners[i].cut
		if startCut == 0 && endCut == 0 {
			trimmed[i] = seg
			continue
		}
		t0 := seg.paramAtLength(startCut, r.Precision)
		t1 := seg.paramAtLength(lengths[i]-endCut, r.Precision)
		trimmed[i] = seg.subsegment(t0, t1)
	}

	out := make(Path, 0, 2*n)
	for i, seg := range trimmed {
		out = append(out, seg)
		c := corners[i]
		if c.cut == 0 {
			continue
		}
		next := trimmed[(i+1)%n]
		out = append(out, fillet(seg, next, c))
	}
	return stitch(out, closed)
}

// stitch drops lines that trimming reduced to a point and makes every
// segment start exactly where the previous one ends.
func stitch(p Path, closed bool) Path {
	const eps = 1e-9
	out := p[:0]
	for _, seg := range p {
		if seg.Kind == LineKind && seg.P0.near(seg.P1, eps) {
			continue
		}
		if len(out) > 0 {
			seg = seg.withStart(out[len(out)-1].End())
		}
		out = append(out, seg)
	}
	if closed && len(out) > 0 {
		last := len(out) - 1
		out[last] = out[last].withEnd(out[0].Start())
	}
	return out
}

// fillet returns a cubic that leaves a where it ends and joins b where it
// starts, tangent to both.
func fillet(a, b Segment, c corner) Segment {
	_, ua := a.Tangents()
	if ua.Hypot2() == 0 {
		ua = c.in
	}
	ub, _ := b.Tangents()
	if ub.Hypot2() == 0 {
		ub = c.out
	}
	ua = ua.Normalize()
	ub = ub.Normalize()
	// Handle length of a circular arc through the cut points.
	k := c.cut * (4.0 / 3.0) * math.Tan(c.angle/4) / math.Tan(c.angle/2)
	p0 := a.End()
	p3 := b.Start()
	return CubicBez{
		p0,
		p0.Translate(ua.Mul(k)),
		p3.Translate(ub.Mul(-k)),
		p3,
	}.Seg()
}

// subsegment returns the part of seg between t0 and t1.
func (seg Segment) subsegment(t0, t1 float64) Segment {
	if t1 < 1 {
		seg, _ = seg.SplitAt(t1)
	}
	if t0 > 0 && t1 > 0 {
		_, seg = seg.SplitAt(min(t0/t1, 1))
	}
	return seg
}

// snapPath rounds all points of p to integers and drops segments that
// collapse to a point.
func snapPath(p Path) Path {
	out := make(Path, 0, len(p))
	for _, seg := range p {
		seg = seg.Round()
		if seg.Kind == LineKind && seg.P0 == seg.P1 {
			continue
		}
		if seg.Kind == CubicKind && seg.P0 == seg.P1 && seg.P0 == seg.P2 && seg.P0 == seg.P3 {
			continue
		}
		out = append(out, seg)
	}
	return out
}
