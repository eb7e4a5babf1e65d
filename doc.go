// Package sinecure interpolates smooth curves through 2D points by stitching
// together half-period sine waves.
//
// Given points sorted by x coordinate, every consecutive pair is connected by
// half a period of the wave
//
//	y(x) = A⋅sin(ω⋅(x − x₂ − n)) + C
//
// whose amplitude A, vertical offset C, and angular frequency ω follow
// directly from the pair, and whose phase n is found numerically with
// Newton–Raphson iteration. The solved phase places the wave's extrema
// exactly at the two points, so every segment starts and ends with a level
// slope and adjacent segments join without kinks. The result looks similar
// to a cubic spline but needs no global system of equations: each segment
// depends on its own pair of points only.
//
// # Features
//
//   - Curve interpolation through arbitrary point sets (see [Interpolate] and
//     [Interpolator])
//   - The half sine as a standalone parametric curve (see [HalfSine])
//   - Phase solving, and general Newton–Raphson root refinement (see
//     [SolvePhase] and [SolveNewtonRaphson])
//
// # Primitives
//
// [Point], [Vec2], and [Rect] are plain value types for 2D coordinates,
// displacements, and axis-aligned boxes. [ParametricCurve] describes curves
// that can be evaluated at t ∈ [0, 1], and [Bounded] describes geometry with
// a finite bounding box.
//
// # Subpackages
//
// Package dataset reads and generates point sets (coordinate text, CSV
// files, synthetic temperature series). Package render draws interpolated
// curves as SVG documents. Both treat this package's types as their
// interchange format.
//
// # Numerical behavior
//
// The phase equation has a root of multiplicity two, so the solver converges
// linearly rather than quadratically and occasionally runs into its
// iteration budget. That is harmless: the returned phase is then accurate to
// well below visual resolution, and interpolation degrades gracefully
// instead of failing. Inputs that make the problem ill-posed, too few points
// or repeated x coordinates, are rejected up front with [ErrTooFewPoints]
// and [ErrDuplicateX].
//
// # Literature
//
//   - [Newton's method]
//
// [Newton's method]: https://en.wikipedia.org/wiki/Newton%27s_method
package sinecure
