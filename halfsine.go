package sinecure

import (
	"iter"
	"math"
)

// HalfSine is half a period of a sine wave spanning two points. It evaluates
//
//	y(x) = A⋅sin(ω⋅(x − x₂ − n)) + C
//
// for x between P0 and P1, with amplitude A = (y₂−y₁)/2, vertical offset
// C = (y₁+y₂)/2, angular frequency ω = π/(x₂−x₁), and phase n.
//
// Amplitude, offset, and frequency follow from the endpoints alone; the phase
// is free. [NewHalfSine] solves for the phase that makes the wave pass
// through both endpoints, which places the wave's extrema exactly at the
// endpoints and thereby levels the slope there. Segments sharing an endpoint
// consequently join without a kink, which is what makes the half sine a
// useful interpolation primitive.
//
// P0 must lie strictly left of P1.
type HalfSine struct {
	P0 Point
	P1 Point
	// Phase shifts the wave along the x axis. A phase of −(x₂−x₁)/2 aligns
	// the wave's extrema with the endpoints.
	Phase float64
}

var _ ParametricCurve = HalfSine{}
var _ Bounded = HalfSine{}

// NewHalfSine returns the half sine spanning p0 and p1, with the phase solved
// so that the wave passes through both points. See [SolvePhase].
func NewHalfSine(p0, p1 Point) HalfSine {
	return HalfSine{
		P0:    p0,
		P1:    p1,
		Phase: SolvePhase(p0, p1, 0, DefaultMaxIter, DefaultTolerance),
	}
}

// Amplitude returns half the vertical span of the wave, (y₂−y₁)/2. It is
// negative for descending segments and zero for level ones.
func (h HalfSine) Amplitude() float64 {
	return 0.5 * (h.P1.Y - h.P0.Y)
}

// Offset returns the wave's vertical offset, the mean of the endpoint
// ordinates.
func (h HalfSine) Offset() float64 {
	return 0.5 * (h.P0.Y + h.P1.Y)
}

// Omega returns the angular frequency π/(x₂−x₁), which makes the segment span
// exactly half a period.
func (h HalfSine) Omega() float64 {
	return math.Pi / (h.P1.X - h.P0.X)
}

// YAt evaluates the wave at the given x coordinate. Values of x outside the
// segment extrapolate the wave beyond its half period.
func (h HalfSine) YAt(x float64) float64 {
	return h.Amplitude()*math.Sin(h.Omega()*(x-h.P1.X-h.Phase)) + h.Offset()
}

// Slope returns the wave's slope dy/dx at the given x coordinate. For a
// solved phase it vanishes at both endpoints.
func (h HalfSine) Slope(x float64) float64 {
	return h.Amplitude() * h.Omega() * math.Cos(h.Omega()*(x-h.P1.X-h.Phase))
}

func (h HalfSine) Eval(t float64) Point {
	x := h.P0.X + t*(h.P1.X-h.P0.X)
	return Pt(x, h.YAt(x))
}

func (h HalfSine) Start() Point { return h.P0 }
func (h HalfSine) End() Point   { return h.P1 }

// Tangents returns the tangent vectors at the start and end of the segment.
// For a solved phase both are level, up to the solver's tolerance.
func (h HalfSine) Tangents() (Vec2, Vec2) {
	dx := h.P1.X - h.P0.X
	return Vec(dx, h.Slope(h.P0.X)*dx), Vec(dx, h.Slope(h.P1.X)*dx)
}

// Samples returns n points on the wave, evenly spaced in x, covering the
// segment from P0 inclusive to P1 exclusive. Successive segments of a curve
// can therefore be sampled without duplicating the shared endpoints.
func (h HalfSine) Samples(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dx := h.P1.X - h.P0.X
		for i := range n {
			x := h.P0.X + dx*float64(i)/float64(n)
			if !yield(Pt(x, h.YAt(x))) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing the segment. A solved
// phase puts the wave's extrema at the endpoints; other phases can push a
// crest or trough into the segment's interior, which is accounted for.
func (h HalfSine) BoundingBox() Rect {
	bbox := NewRectFromPoints(h.Eval(0), h.Eval(1))
	om := h.Omega()
	// Extrema sit where the cosine factor of the slope vanishes. Consecutive
	// extrema are a half period apart, so at most one is interior.
	u0 := om * (h.P0.X - h.P1.X - h.Phase)
	k := math.Ceil((u0 - 0.5*math.Pi) / math.Pi)
	x := h.P1.X + h.Phase + (0.5+k)*math.Pi/om
	if x > h.P0.X && x < h.P1.X {
		bbox = bbox.UnionPoint(Pt(x, h.YAt(x)))
	}
	return bbox
}

// IsInf reports whether any field is infinite.
func (h HalfSine) IsInf() bool {
	return h.P0.IsInf() || h.P1.IsInf() || math.IsInf(h.Phase, 0)
}

// IsNaN reports whether any field is NaN.
func (h HalfSine) IsNaN() bool {
	return h.P0.IsNaN() || h.P1.IsNaN() || math.IsNaN(h.Phase)
}
