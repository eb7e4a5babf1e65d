package sinecure

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

// checkEndpoints verifies that a parametric curve's evaluation agrees with
// its declared endpoints.
func checkEndpoints(t *testing.T, c ParametricCurve, epsilon float64) {
	t.Helper()
	assertNear(t, c.Eval(0), c.Start(), epsilon)
	assertNear(t, c.Eval(1), c.End(), epsilon)
}

// checkBounds verifies that a shape's bounding box contains the given
// points. The box is inflated a little so points on its edge count as
// contained.
func checkBounds(t *testing.T, b Bounded, pts ...Point) {
	t.Helper()
	bbox := b.BoundingBox().Inflate(1e-6, 1e-6)
	for _, pt := range pts {
		if !bbox.Contains(pt) {
			t.Errorf("%s outside bounding box %v", pt, bbox)
		}
	}
}
