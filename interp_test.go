package sinecure

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// samplePoints is a small zigzag data set spanning six segments.
var samplePoints = []Point{
	Pt(-10, -5),
	Pt(-8, -10),
	Pt(-6, -3),
	Pt(-4, 0),
	Pt(-2, 2),
	Pt(0, -1),
	Pt(2, 6),
}

func TestInterpolate(t *testing.T) {
	c, err := Interpolate(samplePoints)
	if err != nil {
		t.Fatal(err)
	}
	if want := (len(samplePoints)-1)*DefaultSamplesPerSegment + 1; len(c) != want {
		t.Fatalf("got %d samples, want %d", len(c), want)
	}
	if !c.IsSorted() {
		t.Error("samples not ordered by x")
	}
	// Segment boundaries sample the input points at their exact x.
	for i, pt := range samplePoints[:len(samplePoints)-1] {
		got := c[i*DefaultSamplesPerSegment]
		if got.X != pt.X {
			t.Errorf("input point %d: got x=%v, want %v", i, got.X, pt.X)
		}
		assertNear(t, got, pt, 1e-9)
	}
	// The final input point is appended verbatim.
	if last := c[len(c)-1]; last != samplePoints[len(samplePoints)-1] {
		t.Errorf("got final sample %s, want %s", last, samplePoints[len(samplePoints)-1])
	}
}

func TestInterpolateTwoPoints(t *testing.T) {
	c, err := Interpolate([]Point{Pt(-10, -5), Pt(-8, -10)})
	if err != nil {
		t.Fatal(err)
	}
	if want := DefaultSamplesPerSegment + 1; len(c) != want {
		t.Fatalf("got %d samples, want %d", len(c), want)
	}
	assertNear(t, c[0], Pt(-10, -5), 1e-9)
	if c[len(c)-1] != Pt(-8, -10) {
		t.Errorf("got final sample %s, want (-8, -10)", c[len(c)-1])
	}
}

func TestInterpolateLevel(t *testing.T) {
	// Equal ordinates degenerate into a zero-amplitude wave; the curve is
	// exactly flat, not merely close to it.
	c, err := Interpolate([]Point{Pt(0, 3), Pt(5, 3)})
	if err != nil {
		t.Fatal(err)
	}
	for i, pt := range c {
		if pt.Y != 3 {
			t.Fatalf("sample %d: got y=%v, want exactly 3", i, pt.Y)
		}
	}
}

func TestInterpolateUnsorted(t *testing.T) {
	shuffled := []Point{Pt(4, 10), Pt(0, 5), Pt(8, 0), Pt(2, 0), Pt(6, 5)}
	sorted := []Point{Pt(0, 5), Pt(2, 0), Pt(4, 10), Pt(6, 5), Pt(8, 0)}

	got, err := Interpolate(shuffled)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Interpolate(sorted)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got)

	// The caller's slice must come through unshuffled.
	diff(t, []Point{Pt(4, 10), Pt(0, 5), Pt(8, 0), Pt(2, 0), Pt(6, 5)}, shuffled)
}

func TestInterpolateErrors(t *testing.T) {
	for _, pts := range [][]Point{nil, {Pt(1, 1)}} {
		if _, err := Interpolate(pts); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("%d points: got %v, want ErrTooFewPoints", len(pts), err)
		}
	}

	// A shared x coordinate must be rejected before any arithmetic divides
	// by the zero segment width.
	c, err := Interpolate([]Point{Pt(1, 2), Pt(1, 5)})
	if !errors.Is(err, ErrDuplicateX) {
		t.Fatalf("got %v, want ErrDuplicateX", err)
	}
	if c != nil {
		t.Errorf("got a partial curve of %d samples, want none", len(c))
	}

	// Also when the duplicates only meet after sorting.
	if _, err := Interpolate([]Point{Pt(3, 1), Pt(1, 2), Pt(2, 0), Pt(1, 5)}); !errors.Is(err, ErrDuplicateX) {
		t.Errorf("got %v, want ErrDuplicateX", err)
	}
}

func TestInterpolateOptions(t *testing.T) {
	ip := Interpolator{SamplesPerSegment: 10}
	c, err := ip.Interpolate(samplePoints)
	if err != nil {
		t.Fatal(err)
	}
	if want := (len(samplePoints)-1)*10 + 1; len(c) != want {
		t.Fatalf("got %d samples, want %d", len(c), want)
	}

	// A starved iteration budget still interpolates, just less exactly.
	ip = Interpolator{SamplesPerSegment: 10, MaxIter: 3}
	coarse, err := ip.Interpolate(samplePoints)
	if err != nil {
		t.Fatal(err)
	}
	if len(coarse) != len(c) {
		t.Fatalf("got %d samples, want %d", len(coarse), len(c))
	}
	if coarse.IsNaN() || coarse.IsInf() {
		t.Error("starved solver produced non-finite samples")
	}
}

func TestInterpolateContinuity(t *testing.T) {
	// Adjacent samples across a segment boundary must not jump: both
	// segments level out at the shared point.
	ip := Interpolator{SamplesPerSegment: 100}
	c, err := ip.Interpolate(samplePoints)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(c); i++ {
		dy := math.Abs(c[i].Y - c[i-1].Y)
		if dy > 0.5 {
			t.Fatalf("samples %d and %d jump by %v", i-1, i, dy)
		}
	}
}

func TestInterpolateBoundingBox(t *testing.T) {
	// The solved phases put every wave's extrema on the input points, so the
	// curve never overshoots the input's bounding box.
	c, err := Interpolate(samplePoints)
	if err != nil {
		t.Fatal(err)
	}
	want := Rect{-10, -10, 2, 6}
	diff(t, want, c.BoundingBox(), cmpopts.EquateApprox(0, 1e-6))
	inflated := want.Inflate(1e-6, 1e-6)
	for _, pt := range c {
		if !inflated.Contains(pt) {
			t.Fatalf("sample %s overshoots %v", pt, want)
		}
	}
	// The curve's own box conversely covers every input point.
	checkBounds(t, c, samplePoints...)
}

func BenchmarkInterpolate(b *testing.B) {
	pts := slices.Clone(samplePoints)
	b.ReportAllocs()
	for range b.N {
		if _, err := Interpolate(pts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolvePhase(b *testing.B) {
	for range b.N {
		SolvePhase(Pt(2, 0), Pt(4, 10), 0, DefaultMaxIter, DefaultTolerance)
	}
}
