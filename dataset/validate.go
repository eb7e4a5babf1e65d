package dataset

import (
	"errors"
	"fmt"

	"honnef.co/go/sinecure"
)

var (
	// ErrTooFewPoints is returned by [Validate] for point sets with fewer
	// than two points.
	ErrTooFewPoints = errors.New("dataset: need at least two points")
	// ErrNotFinite is returned by [Validate] when a coordinate is NaN or
	// infinite.
	ErrNotFinite = errors.New("dataset: non-finite coordinate")
)

// Validate reports whether pts is fit for interpolation: at least two
// points, every coordinate finite. It does not check for duplicate x
// coordinates, which [sinecure.Interpolate] detects itself after sorting.
func Validate(pts []sinecure.Point) error {
	if len(pts) < 2 {
		return fmt.Errorf("%w, have %d", ErrTooFewPoints, len(pts))
	}
	for i, pt := range pts {
		if pt.IsNaN() || pt.IsInf() {
			return fmt.Errorf("%w: point %d is %v", ErrNotFinite, i, pt)
		}
	}
	return nil
}
