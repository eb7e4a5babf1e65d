package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/pflag"

	"honnef.co/go/sinecure"
	"honnef.co/go/sinecure/dataset"
	"honnef.co/go/sinecure/render"
)

const (
	DefaultAddr   = "127.0.0.1:8458"
	DefaultOutput = "data_points.csv"

	ThemeDark  = "dark"
	ThemeLight = "light"

	FormatSVG = "svg"
	FormatCSV = "csv"
)

// FitOptions configures the fit subcommand.
type FitOptions struct {
	CSVPath string
	XColumn string
	YColumn string
	Coords  string
	Demo    bool

	Samples   int
	StylePath string
	Theme     string
	Format    string
	Output    string
	Watch     bool
}

func NewFitOptions() *FitOptions {
	return &FitOptions{
		Samples: sinecure.DefaultSamplesPerSegment,
		Theme:   ThemeDark,
		Format:  FormatSVG,
	}
}

func (o *FitOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.CSVPath, "csv", o.CSVPath, "CSV file to read points from.")
	fs.StringVar(&o.XColumn, "x-column", o.XColumn, "CSV column holding x values, first column if empty.")
	fs.StringVar(&o.YColumn, "y-column", o.YColumn, "CSV column holding y values, second column if empty.")
	fs.StringVar(&o.Coords, "coords", o.Coords, "Coordinate pairs like \"(1, 2), (3, 4)\".")
	fs.BoolVar(&o.Demo, "demo", o.Demo, "Use the built-in sample points.")
	fs.IntVar(&o.Samples, "samples", o.Samples, "Interpolated samples per segment.")
	fs.StringVar(&o.StylePath, "style", o.StylePath, "YAML style file applied over the theme.")
	fs.StringVar(&o.Theme, "theme", o.Theme, "Base theme, dark or light.")
	fs.StringVar(&o.Format, "format", o.Format, "Output format, svg or csv.")
	fs.StringVar(&o.Output, "output", o.Output, "Output file, stdout if empty.")
	fs.BoolVar(&o.Watch, "watch", o.Watch, "Keep running and re-render whenever the CSV file changes.")
}

func (o *FitOptions) Validate() error {
	if o.Samples < 1 {
		return fmt.Errorf("--samples must be at least 1, got %d", o.Samples)
	}
	if err := validateTheme(o.Theme); err != nil {
		return err
	}
	switch o.Format {
	case FormatSVG, FormatCSV:
	default:
		return fmt.Errorf("unknown format %q, expected %s or %s", o.Format, FormatSVG, FormatCSV)
	}
	if o.Watch {
		if o.CSVPath == "" {
			return fmt.Errorf("--watch requires --csv")
		}
		if o.Output == "" {
			return fmt.Errorf("--watch requires --output")
		}
	}
	return nil
}

// GenOptions configures the gen subcommand. Its defaults mirror
// [dataset.DefaultGenerator].
type GenOptions struct {
	Period    float64
	Points    int
	Intervals string
	BaseTemp  float64
	Amplitude float64
	Noise     float64
	Seed      uint64
	Output    string
}

func NewGenOptions() *GenOptions {
	g := dataset.DefaultGenerator()
	return &GenOptions{
		Period:    g.PeriodHours,
		Points:    g.NumPoints,
		Intervals: string(g.Intervals),
		BaseTemp:  g.BaseTemp,
		Amplitude: g.Amplitude,
		Noise:     g.NoiseStd,
		Output:    DefaultOutput,
	}
}

func (o *GenOptions) AddFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&o.Period, "period", o.Period, "Length of the sampled period in hours.")
	fs.IntVar(&o.Points, "points", o.Points, "Number of points to generate.")
	fs.StringVar(&o.Intervals, "intervals", o.Intervals, "Spacing scheme, regular, random or weighted.")
	fs.Float64Var(&o.BaseTemp, "base-temp", o.BaseTemp, "Mean temperature of the cycle.")
	fs.Float64Var(&o.Amplitude, "amplitude", o.Amplitude, "Temperature swing around the mean.")
	fs.Float64Var(&o.Noise, "noise", o.Noise, "Standard deviation of the additive noise.")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "Random seed, 0 picks one at random.")
	fs.StringVar(&o.Output, "output", o.Output, "Output CSV file, \"-\" for stdout.")
}

func (o *GenOptions) Validate() error {
	if o.Points < 1 {
		return fmt.Errorf("--points must be at least 1, got %d", o.Points)
	}
	if o.Period <= 0 {
		return fmt.Errorf("--period must be positive, got %g", o.Period)
	}
	if o.Noise < 0 {
		return fmt.Errorf("--noise must not be negative, got %g", o.Noise)
	}
	switch dataset.Intervals(o.Intervals) {
	case dataset.Regular, dataset.Random, dataset.Weighted:
	default:
		return fmt.Errorf("unknown intervals %q, expected %s, %s or %s",
			o.Intervals, dataset.Regular, dataset.Random, dataset.Weighted)
	}
	return nil
}

// Generator builds the configured dataset generator, seeding it when a seed
// was given.
func (o *GenOptions) Generator() dataset.Generator {
	g := dataset.DefaultGenerator()
	g.PeriodHours = o.Period
	g.NumPoints = o.Points
	g.Intervals = dataset.Intervals(o.Intervals)
	g.BaseTemp = o.BaseTemp
	g.Amplitude = o.Amplitude
	g.NoiseStd = o.Noise
	if o.Seed != 0 {
		g.Rand = rand.New(rand.NewPCG(o.Seed, o.Seed))
	}
	return g
}

// ServeOptions configures the serve subcommand.
type ServeOptions struct {
	Addr    string
	CSVPath string
	XColumn string
	YColumn string

	Samples   int
	StylePath string
	Theme     string
}

func NewServeOptions() *ServeOptions {
	return &ServeOptions{
		Addr:    DefaultAddr,
		Samples: sinecure.DefaultSamplesPerSegment,
		Theme:   ThemeDark,
	}
}

func (o *ServeOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Addr, "addr", o.Addr, "Address to listen on.")
	fs.StringVar(&o.CSVPath, "csv", o.CSVPath, "CSV file to plot, re-read on every request.")
	fs.StringVar(&o.XColumn, "x-column", o.XColumn, "CSV column holding x values, first column if empty.")
	fs.StringVar(&o.YColumn, "y-column", o.YColumn, "CSV column holding y values, second column if empty.")
	fs.IntVar(&o.Samples, "samples", o.Samples, "Interpolated samples per segment.")
	fs.StringVar(&o.StylePath, "style", o.StylePath, "YAML style file applied over the theme.")
	fs.StringVar(&o.Theme, "theme", o.Theme, "Base theme, dark or light.")
}

func (o *ServeOptions) Validate() error {
	if o.Addr == "" {
		return fmt.Errorf("--addr must not be empty")
	}
	if o.CSVPath == "" {
		return fmt.Errorf("--csv is required")
	}
	if o.Samples < 1 {
		return fmt.Errorf("--samples must be at least 1, got %d", o.Samples)
	}
	return validateTheme(o.Theme)
}

func validateTheme(theme string) error {
	switch theme {
	case ThemeDark, ThemeLight:
		return nil
	default:
		return fmt.Errorf("unknown theme %q, expected %s or %s", theme, ThemeDark, ThemeLight)
	}
}

// resolveStyle turns a theme name and an optional style file into a
// concrete style, with the file's keys winning.
func resolveStyle(theme, path string) (render.Style, error) {
	base := render.DarkStyle()
	if theme == ThemeLight {
		base = render.LightStyle()
	}
	if path == "" {
		return base, nil
	}
	return render.LoadStyle(path, base)
}
