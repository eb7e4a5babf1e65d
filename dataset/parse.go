package dataset

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"

	"honnef.co/go/sinecure"
)

// ErrBadCoordinate is returned by [ParseCoords] when a parenthesized pair
// does not contain two numbers.
var ErrBadCoordinate = errors.New("dataset: malformed coordinate pair")

// coordinatePair matches one parenthesized pair, capturing the raw x and y
// components.
var coordinatePair = regexp.MustCompile(`\(\s*([^,]+)\s*,\s*([^)]+)\s*\)`)

// ParseCoords extracts coordinate pairs written like "(1, 2), (3.5, -4)"
// from s. Text outside the parentheses is ignored, so separators and
// trailing prose don't matter. A pair whose components do not parse as
// numbers returns an error wrapping [ErrBadCoordinate]; input without any
// pairs returns an empty slice.
func ParseCoords(s string) ([]sinecure.Point, error) {
	matches := coordinatePair.FindAllStringSubmatch(s, -1)
	pts := make([]sinecure.Point, 0, len(matches))
	for _, m := range matches {
		x, err := cast.ToFloat64E(strings.TrimSpace(m[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCoordinate, m[0])
		}
		y, err := cast.ToFloat64E(strings.TrimSpace(m[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCoordinate, m[0])
		}
		pts = append(pts, sinecure.Pt(x, y))
	}
	return pts, nil
}
