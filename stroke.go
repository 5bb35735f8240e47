package dashoutline

import (
	"fmt"
	"math"
	"slices"
)

// Join defines the connection between two segments of a stroke.
type Join int

const (
	// A straight line connecting the segments.
	BevelJoin Join = iota
	// The segments are extended to their natural intersection point.
	MiterJoin
	// An arc between the segments.
	RoundJoin
)

// Cap defines the shape drawn at the ends of a stroke.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap extending the stroke by half its width.
	SquareCap
	// Rounded cap with a diameter equal to the stroke width.
	RoundCap
)

// OffsetOptions configures an [Offsetter].
type OffsetOptions struct {
	// Horizontal and vertical offset. When making a stroke, the stroke is
	// twice as wide as the offset.
	OffsetX, OffsetY float64
	// Turn each path into a filled stroke instead of moving it.
	MakeStroke bool
	// Distort the result to fit vertical metrics.
	AutoStroke bool
	// Fraction of the stroke that lies to the left of the path, in the
	// direction of travel. 0.5 centers the stroke.
	Position float64
	// Caps at the start and end of open paths.
	StartCap, EndCap Cap
	// Keep the result point-compatible across masters.
	KeepCompatible bool
}

// An Offsetter moves outlines or expands them into strokes.
type Offsetter interface {
	Offset(o Outline, opts OffsetOptions) (Outline, error)
}

// Stroker is the default [Offsetter]. Curves are flattened into line
// segments before they are offset, so the result consists of lines, plus
// cubic arcs for round joins and caps.
//
// A positive one-sided offset moves a path to the right of its direction of
// travel. For counter-clockwise contours in a y-up coordinate system that is
// outwards.
//
// Stroker ignores KeepCompatible and returns [ErrUnsupported] for AutoStroke
// and for differing horizontal and vertical offsets.
type Stroker struct {
	// Style for joins on the outer side of corners.
	Join Join
	// Limit for miter joins.
	MiterLimit float64
	// Accuracy of flattened curves and of round joins and caps.
	Tolerance float64
}

// DefaultStroker keeps corners sharp so that they can be rounded afterwards.
var DefaultStroker = Stroker{
	Join:       MiterJoin,
	MiterLimit: 4.0,
	Tolerance:  0.25,
}

var _ Offsetter = Stroker{}

// Offset implements Offsetter.
func (s Stroker) Offset(o Outline, opts OffsetOptions) (Outline, error) {
	if opts.AutoStroke {
		return nil, fmt.Errorf("%w: auto stroke", ErrUnsupported)
	}
	if opts.OffsetX != opts.OffsetY {
		return nil, fmt.Errorf("%w: offsets %g and %g differ", ErrUnsupported, opts.OffsetX, opts.OffsetY)
	}
	d := opts.OffsetX
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: offset %g", ErrInvalidParam, d)
	}
	if !(s.Tolerance > 0) {
		s.Tolerance = DefaultStroker.Tolerance
	}
	if !(s.MiterLimit > 0) {
		s.MiterLimit = DefaultStroker.MiterLimit
	}

	if !opts.MakeStroke {
		if d == 0 {
			return o.Clone(), nil
		}
		var els []PathElement
		for _, p := range o {
			ctx := newStrokeCtx(s, d, d)
			ctx.walk(p)
			els = ctx.finishOneSided(els, p.Closed())
		}
		return OutlineFromElements(slices.Values(els))
	}

	if !(d > 0) {
		return nil, fmt.Errorf("%w: stroke offset must be positive, got %g", ErrInvalidParam, d)
	}
	if !(opts.Position >= 0 && opts.Position <= 1) {
		return nil, fmt.Errorf("%w: stroke position %g outside [0, 1]", ErrInvalidParam, opts.Position)
	}
	width := 2 * d
	left := width * opts.Position
	right := width - left

	var els []PathElement
	for _, p := range o {
		ctx := newStrokeCtx(s, right, -left)
		ctx.walk(p)
		if p.Closed() {
			els = ctx.finishClosed(els)
		} else {
			els = ctx.finish(els, opts.StartCap, opts.EndCap)
		}
	}
	return OutlineFromElements(slices.Values(els))
}

// strokeSide accumulates one side of a stroke, offset by a signed distance
// to the right of the path.
type strokeSide struct {
	els    []PathElement
	offset float64
	last   Point
}

// point returns the point of this side next to p, given the path's unit left
// normal at p.
func (sd *strokeSide) point(p Point, norm Vec2) Point {
	return p.Translate(norm.Mul(-sd.offset))
}

func (sd *strokeSide) moveTo(pt Point) {
	sd.els = append(sd.els, MoveTo(pt))
	sd.last = pt
}

func (sd *strokeSide) lineTo(pt Point) {
	if pt == sd.last {
		return
	}
	sd.els = append(sd.els, LineTo(pt))
	sd.last = pt
}

// arcTo appends an arc around center that ends exactly at end.
func (sd *strokeSide) arcTo(center Point, sweep float64, end Point, tolerance float64) {
	v := sd.last.Sub(center)
	arc := Arc{Center: center, Radius: v.Hypot(), StartAngle: v.Angle(), SweepAngle: sweep}
	segs := arc.Segments(tolerance)
	if len(segs) == 0 {
		sd.lineTo(end)
		return
	}
	segs[len(segs)-1].P3 = end
	for _, seg := range segs {
		sd.els = append(sd.els, CubicTo(seg.P1, seg.P2, seg.P3))
	}
	sd.last = end
}

// join connects the side across a corner at p0, where the path turns from
// direction ab to direction cd. closing is set for the corner at the start
// of a closed path.
func (sd *strokeSide) join(s Stroker, p0 Point, lastNorm, norm, ab, cd Vec2, closing bool) {
	fpLast := sd.point(p0, lastNorm)
	fpThis := sd.point(p0, norm)
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	if cross*sd.offset <= 0 {
		sd.innerJoin(fpLast, fpThis, ab, cd, closing)
		return
	}
	switch s.Join {
	case BevelJoin:
	case MiterJoin:
		hypot := math.Hypot(cross, dot)
		if 2.0*hypot < (hypot+dot)*s.MiterLimit*s.MiterLimit {
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			sd.lineTo(fpThis.Translate(cd.Mul(h).Negate()))
		}
	case RoundJoin:
		sd.arcTo(p0, math.Atan2(cross, dot), fpThis, s.Tolerance)
	}
	sd.lineTo(fpThis)
}

// innerJoin cuts the inner side of a corner at the intersection of the two
// offset lines, provided it lies on both of them. Otherwise the side is
// connected straight across, which leaves a small loop.
func (sd *strokeSide) innerJoin(fpLast, fpThis Point, ab, cd Vec2, closing bool) {
	cross := ab.Cross(cd)
	w := fpThis.Sub(fpLast)
	n := len(sd.els)
	if cross != 0 && n > 1 && sd.els[n-1].Kind == LineToKind && sd.els[n-1].P0 == fpLast {
		h := ab.Cross(w) / cross
		g := w.Cross(cd) / cross
		if h >= -1 && h <= 0 && g >= -1 && g <= 0 {
			x := fpThis.Translate(cd.Mul(h).Negate())
			if prev, _ := sd.els[n-2].EndPoint(); prev == x {
				sd.els = sd.els[:n-1]
			} else {
				sd.els[n-1].P0 = x
			}
			sd.last = x
			if closing && sd.els[0].P0 == fpThis {
				sd.els[0].P0 = x
			}
			return
		}
	}
	sd.lineTo(fpThis)
}

type strokeCtx struct {
	s        Stroker
	fwd, bwd strokeSide
	started  bool
	startPt  Point
	startTan Vec2
	lastPt   Point
	lastTan  Vec2
	// Set while joining the end of a closed path to its start.
	closing bool
	// If hypot < (hypot + dot) * joinThresh omit join altogether.
	joinThresh float64
}

func newStrokeCtx(s Stroker, fwdOffset, bwdOffset float64) *strokeCtx {
	width := math.Abs(fwdOffset - bwdOffset)
	if width == 0 {
		width = 2 * math.Abs(fwdOffset)
	}
	return &strokeCtx{
		s:          s,
		fwd:        strokeSide{offset: fwdOffset},
		bwd:        strokeSide{offset: bwdOffset},
		joinThresh: 2.0 * s.Tolerance / width,
	}
}

// unitNormal returns the unit vector to the left of tan.
func unitNormal(tan Vec2) Vec2 {
	return tan.Perp().Mul(1 / tan.Hypot())
}

// walk offsets both sides of p, flattening cubics.
func (ctx *strokeCtx) walk(p Path) {
	if len(p) == 0 {
		return
	}
	ctx.startPt = p.Start()
	ctx.lastPt = ctx.startPt
	var pts []Point
	for _, seg := range p {
		switch seg.Kind {
		case LineKind:
			ctx.lineTo(seg.P1)
		case CubicKind:
			pts = seg.Cubic().flatten(pts[:0], ctx.s.Tolerance)
			for _, pt := range pts {
				ctx.lineTo(pt)
			}
		default:
			panic(invalidKind(seg.Kind))
		}
	}
}

func (ctx *strokeCtx) lineTo(p1 Point) {
	if p1 == ctx.lastPt {
		return
	}
	tangent := p1.Sub(ctx.lastPt)
	ctx.doJoin(tangent)
	norm := unitNormal(tangent)
	ctx.fwd.lineTo(ctx.fwd.point(p1, norm))
	ctx.bwd.lineTo(ctx.bwd.point(p1, norm))
	ctx.lastPt = p1
	ctx.lastTan = tangent
}

func (ctx *strokeCtx) doJoin(tan0 Vec2) {
	norm := unitNormal(tan0)
	p0 := ctx.lastPt
	if !ctx.started {
		ctx.fwd.moveTo(ctx.fwd.point(p0, norm))
		ctx.bwd.moveTo(ctx.bwd.point(p0, norm))
		ctx.startTan = tan0
		ctx.started = true
		return
	}
	ab := ctx.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)
	if dot > 0.0 && math.Abs(cross) < hypot*ctx.joinThresh {
		return
	}
	lastNorm := unitNormal(ab)
	ctx.fwd.join(ctx.s, p0, lastNorm, norm, ab, cd, ctx.closing)
	ctx.bwd.join(ctx.s, p0, lastNorm, norm, ab, cd, ctx.closing)
}

// closeJoin joins the end of a closed path to its start.
func (ctx *strokeCtx) closeJoin() {
	ctx.closing = true
	ctx.doJoin(ctx.startTan)
	ctx.closing = false
}

// finish closes an open stroke: forward side, end cap, backward side in
// reverse, start cap.
func (ctx *strokeCtx) finish(out []PathElement, startCap, endCap Cap) []PathElement {
	if !ctx.started {
		return out
	}
	fwd := &ctx.fwd
	returnPt := ctx.bwd.last
	addCap(fwd, endCap, returnPt, ctx.s.Tolerance)
	extendReversed(fwd, ctx.bwd.els)
	startPt := fwd.els[0].P0
	addCap(fwd, startCap, startPt, ctx.s.Tolerance)
	fwd.els = append(fwd.els, ClosePath())
	return append(out, fwd.els...)
}

// finishClosed emits a closed path's stroke as two closed contours.
func (ctx *strokeCtx) finishClosed(out []PathElement) []PathElement {
	if !ctx.started {
		return out
	}
	ctx.closeJoin()
	out = append(out, ctx.fwd.els...)
	out = append(out, ClosePath())

	back := strokeSide{}
	back.moveTo(ctx.bwd.last)
	extendReversed(&back, ctx.bwd.els)
	out = append(out, back.els...)
	return append(out, ClosePath())
}

// finishOneSided emits only the forward side.
func (ctx *strokeCtx) finishOneSided(out []PathElement, closed bool) []PathElement {
	if !ctx.started {
		return out
	}
	if closed {
		ctx.closeJoin()
		out = append(out, ctx.fwd.els...)
		return append(out, ClosePath())
	}
	return append(out, ctx.fwd.els...)
}

// addCap connects the side's current point to end, which lies across the
// stroke.
func addCap(sd *strokeSide, c Cap, end Point, tolerance float64) {
	center := sd.last.Midpoint(end)
	d := sd.last.Sub(center)
	switch c {
	case ButtCap:
		sd.lineTo(end)
	case RoundCap:
		sd.arcTo(center, math.Pi, end, tolerance)
	case SquareCap:
		ext := d.Perp()
		sd.lineTo(sd.last.Translate(ext))
		sd.lineTo(end.Translate(ext))
		sd.lineTo(end)
	}
}

// extendReversed appends the elements of a side, which start with a MoveTo,
// in reverse order.
func extendReversed(out *strokeSide, elements []PathElement) {
	for i := len(elements) - 1; i >= 1; i-- {
		end, ok := elements[i-1].EndPoint()
		if !ok {
			panic("unreachable")
		}
		el := elements[i]
		switch el.Kind {
		case LineToKind:
			out.lineTo(end)
		case CubicToKind:
			out.els = append(out.els, CubicTo(el.P1, el.P0, end))
			out.last = end
		default:
			panic(fmt.Sprintf("unexpected %s", el))
		}
	}
}
