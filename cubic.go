package dashoutline

import "math"

const (
	// DefaultPrecision is the flatness tolerance, in outline units, used when
	// measuring curves.
	DefaultPrecision = 4.0

	// MaxLengthDepth bounds the recursion of [CubicBez.Length]. Curves that
	// still aren't flat at this depth are measured with the flat estimate.
	MaxLengthDepth = 24
)

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// SplitAt splits the cubic at parameter t, using de Casteljau.
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm}, CubicBez{pm, p123, p23, c.P3}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.SplitAt(0.5)
}

// ChordLength returns the distance between the cubic's end points.
func (c CubicBez) ChordLength() float64 {
	return c.P0.Distance(c.P3)
}

// PolygonLength returns the length of the control polygon.
func (c CubicBez) PolygonLength() float64 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

// Length estimates the arc length of the cubic.
//
// The estimate is the average of the chord and the control polygon, which
// bracket the true length. While they differ by precision or more, the curve
// is split in half and both halves are measured. A non-positive precision
// selects [DefaultPrecision].
func (c CubicBez) Length(precision float64) float64 {
	if !(precision > 0) {
		precision = DefaultPrecision
	}
	return c.length(precision, 0)
}

func (c CubicBez) length(precision float64, depth int) float64 {
	chord := c.ChordLength()
	polygon := c.PolygonLength()
	est := (chord + polygon) * 0.5
	if math.IsNaN(est) || math.IsInf(est, 0) {
		return est
	}
	if math.Abs(chord-polygon) < precision || depth >= MaxLengthDepth {
		return est
	}
	c0, c1 := c.Subdivide()
	return c0.length(precision, depth+1) + c1.length(precision, depth+1)
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Tangents returns the directions at the start and the end of the curve.
//
// This version is robust to control points coinciding with the end points.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

// flatten appends points approximating the cubic to dst, excluding the start
// point. Subdivision stops once chord and control polygon agree within
// tolerance.
func (c CubicBez) flatten(dst []Point, tolerance float64) []Point {
	return c.flattenDepth(dst, tolerance, 0)
}

func (c CubicBez) flattenDepth(dst []Point, tolerance float64, depth int) []Point {
	if d := c.PolygonLength() - c.ChordLength(); !(d >= tolerance) || depth >= MaxLengthDepth/2 {
		return append(dst, c.P3)
	}
	c0, c1 := c.Subdivide()
	dst = c0.flattenDepth(dst, tolerance, depth+1)
	return c1.flattenDepth(dst, tolerance, depth+1)
}

func (c CubicBez) Seg() Segment {
	return Segment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}
