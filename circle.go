package dashoutline

import "math"

// Circle is a circle, mostly useful for building test outlines.
type Circle struct {
	Center Point
	Radius float64
}

// Circumference returns the exact circumference of the circle.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * math.Abs(c.Radius)
}

// Path returns a closed counter-clockwise path approximating the circle,
// starting at the point with the largest x coordinate.
func (c Circle) Path(tolerance float64) Path {
	scaledError := math.Abs(c.Radius) / tolerance
	var n int
	var armLength float64
	if scaledError < 1.0/1.9608e-4 {
		// Solution from http://spencermortensen.com/articles/bezier-circle/
		n = 4
		armLength = 0.551915024494
	} else {
		// This is empirically determined to fall within error tolerance.
		n = int(math.Ceil(math.Pow(1.1163*scaledError, 1.0/6.0)))
		armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/(float64(n)))
	}

	x, y := c.Center.Splat()
	r := c.Radius
	start := Pt(x+r, y)
	out := make(Path, 0, n)
	p0 := start
	deltaTh := 2.0 * math.Pi / float64(n)
	for ix := 1; ix <= n; ix++ {
		a := armLength
		th1 := deltaTh * float64(ix)
		th0 := th1 - deltaTh
		s0, c0 := math.Sincos(th0)
		s1, c1 := math.Sincos(th1)
		p3 := Pt(x+r*c1, y+r*s1)
		if ix == n {
			s1, c1 = 0, 1
			p3 = start
		}
		out = append(out, CubicBez{
			p0,
			Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
			Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
			p3,
		}.Seg())
		p0 = p3
	}
	return out
}
