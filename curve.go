package sinecure

import (
	"cmp"
	"slices"
)

// ParametricCurve describes a curve parametrized by a scalar, evaluating to
// points in the plane.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Bounded describes geometry that has a finite axis-aligned bounding box.
type Bounded interface {
	// BoundingBox returns the smallest rectangle that encloses the geometry.
	BoundingBox() Rect
}

// Curve is a polyline of curve samples, ordered by x coordinate.
//
// It is produced by [Interpolator.Interpolate] and consumed point by point,
// for example by a renderer.
type Curve []Point

var _ Bounded = Curve(nil)

// cmpX orders points by their x coordinate.
func cmpX(a, b Point) int {
	return cmp.Compare(a.X, b.X)
}

// BoundingBox returns the smallest rectangle enclosing all samples. The zero
// rectangle is returned for an empty curve.
func (c Curve) BoundingBox() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(c[0], c[0])
	for _, pt := range c[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// IsSorted reports whether the samples are ordered by non-decreasing x
// coordinate.
func (c Curve) IsSorted() bool {
	return slices.IsSortedFunc(c, cmpX)
}

// IsNaN reports whether any sample has a NaN coordinate.
func (c Curve) IsNaN() bool {
	return slices.ContainsFunc(c, Point.IsNaN)
}

// IsInf reports whether any sample has an infinite coordinate.
func (c Curve) IsInf() bool {
	return slices.ContainsFunc(c, Point.IsInf)
}
