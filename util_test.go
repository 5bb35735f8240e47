package dashoutline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// polyline returns an open path of lines through pts.
func polyline(pts ...Point) Path {
	var p Path
	for i := 1; i < len(pts); i++ {
		p = append(p, Line{pts[i-1], pts[i]}.Seg())
	}
	return p
}

// polygon returns a closed path of lines through pts.
func polygon(pts ...Point) Path {
	return polyline(append(pts, pts[0])...)
}

func assertContiguous(t *testing.T, p Path) {
	t.Helper()
	for i := 1; i < len(p); i++ {
		if p[i-1].End() != p[i].Start() {
			t.Fatalf("segment %d ends at %s, segment %d starts at %s", i-1, p[i-1].End(), i, p[i].Start())
		}
	}
}
