package dashoutline

import "math"

// Arc is a circular arc.
type Arc struct {
	Center Point
	Radius float64
	// Angle of the start point, in radians. Angles increase from the positive
	// x axis towards the positive y axis.
	StartAngle float64
	// Signed angle covered by the arc, in radians.
	SweepAngle float64
}

func (a Arc) point(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return a.Center.Translate(Vec(cos, sin).Mul(a.Radius))
}

// Start returns the arc's first point.
func (a Arc) Start() Point { return a.point(a.StartAngle) }

// End returns the arc's last point.
func (a Arc) End() Point { return a.point(a.StartAngle + a.SweepAngle) }

// Segments approximates the arc with cubic Béziers that stay within tolerance
// of the true arc.
func (a Arc) Segments(tolerance float64) []Segment {
	r := math.Abs(a.Radius)
	if r == 0 || a.SweepAngle == 0 {
		return nil
	}
	scaledError := r / tolerance
	// Number of subdivisions per full circle based on error tolerance.
	nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
	n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
	step := a.SweepAngle / n
	arm := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*step)), a.SweepAngle) * a.Radius

	out := make([]Segment, 0, int(n))
	angle0 := a.StartAngle
	p0 := a.point(angle0)
	for range int(n) {
		angle1 := angle0 + step
		p3 := a.point(angle1)
		s0, c0 := math.Sincos(angle0)
		s1, c1 := math.Sincos(angle1)
		p1 := p0.Translate(Vec(-s0, c0).Mul(arm))
		p2 := p3.Translate(Vec(s1, -c1).Mul(arm))
		out = append(out, CubicBez{p0, p1, p2, p3}.Seg())
		angle0 = angle1
		p0 = p3
	}
	return out
}
