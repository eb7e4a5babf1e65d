package sinecure

import (
	"errors"
	"fmt"
	"slices"
)

// DefaultSamplesPerSegment is the default sampling resolution of
// [Interpolator.Interpolate], chosen to render smoothly at typical plot
// sizes.
const DefaultSamplesPerSegment = 250

var (
	// ErrTooFewPoints is returned when fewer than two points are given to
	// interpolate through.
	ErrTooFewPoints = errors.New("sinecure: need at least two points")
	// ErrDuplicateX is returned when two points share an x coordinate, which
	// leaves no room for a half period between them.
	ErrDuplicateX = errors.New("sinecure: duplicate x coordinate")
)

// Interpolator interpolates a curve through a set of points, connecting each
// consecutive pair with a [HalfSine] segment. The zero value is ready to use
// and uses the package defaults.
type Interpolator struct {
	// SamplesPerSegment is the number of curve samples per segment. If it is
	// zero or negative, DefaultSamplesPerSegment is used.
	SamplesPerSegment int
	// MaxIter bounds the phase solver's iterations per segment. If it is zero
	// or negative, DefaultMaxIter is used.
	MaxIter int
	// Tolerance is the phase solver's residual tolerance. If it is zero or
	// negative, DefaultTolerance is used.
	Tolerance float64
	// Phase is the solver's initial phase estimate for every segment.
	Phase float64
}

func (ip Interpolator) samplesPerSegment() int {
	if ip.SamplesPerSegment <= 0 {
		return DefaultSamplesPerSegment
	}
	return ip.SamplesPerSegment
}

func (ip Interpolator) maxIter() int {
	if ip.MaxIter <= 0 {
		return DefaultMaxIter
	}
	return ip.MaxIter
}

func (ip Interpolator) tolerance() float64 {
	if ip.Tolerance <= 0 {
		return DefaultTolerance
	}
	return ip.Tolerance
}

// Interpolate computes a smooth curve through the given points.
//
// The points are sorted by x coordinate first; the input slice is not
// modified. Each consecutive pair is spanned by a [HalfSine] whose phase is
// solved so the wave passes through both points with a level slope, and the
// wave is sampled at [Interpolator.SamplesPerSegment] evenly spaced x
// positions, excluding the right endpoint. The final input point is appended
// as the last sample, so the curve closes exactly on it. For k input points
// and n samples per segment, the result has (k−1)⋅n + 1 samples, ordered by
// x.
//
// Interpolate returns [ErrTooFewPoints] for fewer than two points and
// [ErrDuplicateX] if two points share an x coordinate. Both are detected
// before any curve is constructed.
func (ip Interpolator) Interpolate(points []Point) (Curve, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	pts := slices.Clone(points)
	slices.SortFunc(pts, cmpX)
	for i := range len(pts) - 1 {
		if pts[i].X == pts[i+1].X {
			return nil, fmt.Errorf("%w: %g", ErrDuplicateX, pts[i].X)
		}
	}

	n := ip.samplesPerSegment()
	out := make(Curve, 0, (len(pts)-1)*n+1)
	for i := range len(pts) - 1 {
		h := HalfSine{
			P0:    pts[i],
			P1:    pts[i+1],
			Phase: SolvePhase(pts[i], pts[i+1], ip.Phase, ip.maxIter(), ip.tolerance()),
		}
		for pt := range h.Samples(n) {
			out = append(out, pt)
		}
	}
	out = append(out, pts[len(pts)-1])
	return out, nil
}

// Interpolate computes a smooth curve through the given points using the
// package defaults. See [Interpolator.Interpolate].
func Interpolate(points []Point) (Curve, error) {
	return Interpolator{}.Interpolate(points)
}
