package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// A Style describes how [WriteSVG] draws a curve plot. Colors are SVG color
// values, sizes are in pixels. Styles are plain data; load one from YAML
// with [LoadStyle] or start from [DarkStyle] or [LightStyle].
type Style struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Margin is the space reserved around the plot area for titles, tick
	// labels and axis labels.
	Margin int `yaml:"margin"`

	Background string `yaml:"background"`
	TextColor  string `yaml:"textColor"`

	Grid      bool   `yaml:"grid"`
	GridColor string `yaml:"gridColor"`

	CurveColor   string  `yaml:"curveColor"`
	CurveWidth   float64 `yaml:"curveWidth"`
	CurveOpacity float64 `yaml:"curveOpacity"`

	PointColor  string  `yaml:"pointColor"`
	PointRadius float64 `yaml:"pointRadius"`

	Title      string `yaml:"title"`
	XLabel     string `yaml:"xLabel"`
	YLabel     string `yaml:"yLabel"`
	CurveLabel string `yaml:"curveLabel"`
	PointLabel string `yaml:"pointLabel"`
}

// DarkStyle returns the default style, light strokes on a black background.
func DarkStyle() Style {
	return Style{
		Width:        1000,
		Height:       600,
		Margin:       60,
		Background:   "black",
		TextColor:    "white",
		Grid:         false,
		GridColor:    "gray",
		CurveColor:   "blue",
		CurveWidth:   2,
		CurveOpacity: 1,
		PointColor:   "red",
		PointRadius:  4,
		Title:        "Curve Interpolation Using Omega Function",
		CurveLabel:   "Interpolated Curve",
		PointLabel:   "Original Points",
	}
}

// LightStyle returns [DarkStyle] with the polarity flipped for white
// backgrounds.
func LightStyle() Style {
	style := DarkStyle()
	style.Background = "white"
	style.TextColor = "black"
	style.GridColor = "lightgray"
	return style
}

// LoadStyle reads a YAML style file and applies it over base. Keys absent
// from the file keep their value from base, so partial styles only override
// what they set.
func LoadStyle(path string, base Style) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	style := base
	if err := yaml.Unmarshal(data, &style); err != nil {
		return base, fmt.Errorf("render: parsing style %s: %w", path, err)
	}
	return style, nil
}
