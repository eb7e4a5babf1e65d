package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"slices"

	"honnef.co/go/sinecure"
)

// Column names used for generated temperature series.
const (
	TimeColumn        = "Time (hours)"
	TemperatureColumn = "Temperature (°C)"
)

// Intervals selects how a [Generator] spaces its time points.
type Intervals string

const (
	// Regular spaces time points evenly across the period, endpoints
	// included.
	Regular Intervals = "regular"
	// Random draws time points uniformly at random from the period.
	Random Intervals = "random"
	// Weighted draws time points per part of day, oversampling the waking
	// hours.
	Weighted Intervals = "weighted"
)

// ErrUnknownIntervals is returned for an [Intervals] value that is none of
// [Regular], [Random] or [Weighted].
var ErrUnknownIntervals = errors.New("dataset: unknown intervals mode")

// A Generator synthesizes a day-cycle temperature series: a sine with its
// minimum at the start of the period, plus Gaussian noise. The zero value is
// not useful; start from [DefaultGenerator] and override fields as needed.
type Generator struct {
	// PeriodHours is the length of the sampled period.
	PeriodHours float64
	// NumPoints is the number of samples to draw.
	NumPoints int
	// Intervals selects the spacing scheme. The empty string means
	// [Regular].
	Intervals Intervals
	// BaseTemp is the mean temperature of the cycle.
	BaseTemp float64
	// Amplitude is the swing around BaseTemp.
	Amplitude float64
	// NoiseStd is the standard deviation of the additive noise.
	NoiseStd float64
	// Rand is the randomness source. If nil, an unseeded source is used.
	Rand *rand.Rand
}

// DefaultGenerator returns a Generator for a 24 hour cycle sampled at 25
// regular points, with an 18 degree mean, 7 degrees of swing and 1.2
// degrees of noise.
func DefaultGenerator() Generator {
	return Generator{
		PeriodHours: 24,
		NumPoints:   25,
		Intervals:   Regular,
		BaseTemp:    18,
		Amplitude:   7,
		NoiseStd:    1.2,
	}
}

// dayParts partitions a 24 hour day for [Weighted] spacing. The weights sum
// to one and favor morning and afternoon; leftover samples are distributed
// in this order.
var dayParts = []struct {
	start, end float64
	weight     float64
}{
	{0, 6, 0.15},
	{6, 12, 0.30},
	{12, 18, 0.30},
	{18, 24, 0.25},
}

func (g Generator) rng() *rand.Rand {
	if g.Rand != nil {
		return g.Rand
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// TimePoints returns NumPoints sorted hours in [0, PeriodHours], spaced
// according to Intervals.
func (g Generator) TimePoints() ([]float64, error) {
	switch g.Intervals {
	case Regular, "":
		return g.regularHours(), nil
	case Random:
		return g.randomHours(), nil
	case Weighted:
		return g.weightedHours(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntervals, g.Intervals)
	}
}

func (g Generator) regularHours() []float64 {
	if g.NumPoints <= 0 {
		return nil
	}
	if g.NumPoints == 1 {
		return []float64{0}
	}
	hours := make([]float64, g.NumPoints)
	step := g.PeriodHours / float64(g.NumPoints-1)
	for i := range hours {
		hours[i] = float64(i) * step
	}
	hours[len(hours)-1] = g.PeriodHours
	return hours
}

func (g Generator) randomHours() []float64 {
	if g.NumPoints <= 0 {
		return nil
	}
	rng := g.rng()
	hours := make([]float64, 0, g.NumPoints)
	for range g.NumPoints - 1 {
		hours = append(hours, rng.Float64()*g.PeriodHours)
	}
	hours = append(hours, g.PeriodHours)
	slices.Sort(hours)
	return hours
}

func (g Generator) weightedHours() []float64 {
	if g.NumPoints <= 0 {
		return nil
	}
	counts := make([]int, len(dayParts))
	total := 0
	for i, part := range dayParts {
		counts[i] = max(1, int(part.weight*float64(g.NumPoints)))
		total += counts[i]
	}
	// Truncation and the one-per-part minimum leave the total a few samples
	// off; settle the difference round-robin.
	for i := 0; total < g.NumPoints; i++ {
		counts[i%len(counts)]++
		total++
	}
	for i := 0; total > g.NumPoints; i++ {
		counts[i%len(counts)]--
		total--
	}

	rng := g.rng()
	scale := g.PeriodHours / 24
	hours := make([]float64, 0, g.NumPoints)
	for i, part := range dayParts {
		start, end := part.start*scale, part.end*scale
		for range counts[i] {
			hours = append(hours, start+rng.Float64()*(end-start))
		}
	}
	slices.Sort(hours)
	return hours
}

// Temperatures returns one temperature per hour, following the day cycle
// with additive noise. The coldest part of the cycle falls on hour zero,
// the warmest on half the period.
func (g Generator) Temperatures(hours []float64) []float64 {
	rng := g.rng()
	temps := make([]float64, len(hours))
	for i, h := range hours {
		cycle := g.Amplitude * math.Sin(2*math.Pi*h/g.PeriodHours-math.Pi/2)
		temps[i] = g.BaseTemp + cycle + rng.NormFloat64()*g.NoiseStd
	}
	return temps
}

// Points generates a full series, pairing hours with temperatures.
func (g Generator) Points() ([]sinecure.Point, error) {
	hours, err := g.TimePoints()
	if err != nil {
		return nil, err
	}
	temps := g.Temperatures(hours)
	pts := make([]sinecure.Point, len(hours))
	for i := range pts {
		pts[i] = sinecure.Pt(hours[i], temps[i])
	}
	return pts, nil
}

// WriteCSV generates a series and writes it as CSV with [TimeColumn] and
// [TemperatureColumn] headers. It returns the generated points.
func (g Generator) WriteCSV(w io.Writer) ([]sinecure.Point, error) {
	pts, err := g.Points()
	if err != nil {
		return nil, err
	}
	if err := WriteCSV(w, pts, TimeColumn, TemperatureColumn); err != nil {
		return nil, err
	}
	return pts, nil
}

// WriteCSVFile generates a series and writes it to a CSV file at path. See
// [Generator.WriteCSV].
func (g Generator) WriteCSVFile(path string) ([]sinecure.Point, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	pts, err := g.WriteCSV(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return pts, f.Close()
}

// SamplePoints returns a small fixed demonstration point set.
func SamplePoints() []sinecure.Point {
	return []sinecure.Point{
		sinecure.Pt(0, 5),
		sinecure.Pt(2, 0),
		sinecure.Pt(4, 10),
		sinecure.Pt(6, 5),
		sinecure.Pt(8, 0),
	}
}
