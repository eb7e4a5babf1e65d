package sinecure

import "math"

const (
	// DefaultTolerance is a default residual tolerance for
	// [SolveNewtonRaphson]. It is close to the precision limit of float64 and
	// suits well-conditioned curve construction problems.
	DefaultTolerance = 1e-12

	// DefaultMaxIter is a default iteration budget for [SolveNewtonRaphson].
	DefaultMaxIter = 30
)

// SolveNewtonRaphson refines a root of f, starting from the initial estimate
// x0.
//
// Each iteration first evaluates the residual f(x) and stops as soon as its
// magnitude drops below tolerance. A vanishing derivative stops the iteration
// as well, returning the estimate refined so far rather than dividing by
// zero. Once the iteration budget is exhausted, the current estimate is
// returned regardless of the residual; callers that need a guarantee must
// check f at the result.
//
// Roots of multiplicity greater than one converge linearly instead of
// quadratically, so generous budgets are appropriate when such roots are
// expected.
func SolveNewtonRaphson(f, df func(float64) float64, x0 float64, maxIter int, tolerance float64) float64 {
	x := x0
	for range maxIter {
		fx := f(x)
		if math.Abs(fx) < tolerance {
			break
		}
		dfx := df(x)
		if dfx == 0.0 {
			break
		}
		x -= fx / dfx
	}
	return x
}

// SolvePhase solves for the phase n that makes the half-period sine wave
// spanning p0 and p1 pass through p0. See [HalfSine] for the wave model.
//
// The wave's construction already fixes its amplitude and vertical offset so
// that p1 is interpolated; the phase is the remaining degree of freedom and
// pins down the left endpoint. The residual
//
//	g(n) = A⋅sin(ω⋅(x₁−x₂−n)) + C − y₁
//
// has a root of multiplicity two at n = −(x₂−x₁)/2, where the wave's trough
// (or crest, for descending segments) touches p0. [SolveNewtonRaphson]
// therefore converges linearly here, halving the error per iteration;
// [DefaultMaxIter] covers realistic coordinate ranges. For equal endpoint
// ordinates the residual vanishes identically and the initial guess is
// returned unchanged.
func SolvePhase(p0, p1 Point, guess float64, maxIter int, tolerance float64) float64 {
	a := 0.5 * (p1.Y - p0.Y)
	c := 0.5 * (p0.Y + p1.Y)
	om := math.Pi / (p1.X - p0.X)
	f := func(n float64) float64 {
		return a*math.Sin(om*(p0.X-p1.X-n)) + c - p0.Y
	}
	df := func(n float64) float64 {
		return -a * om * math.Cos(om*(p0.X-p1.X-n))
	}
	return SolveNewtonRaphson(f, df, guess, maxIter, tolerance)
}
