package render

import (
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"honnef.co/go/sinecure"
)

var (
	// ErrNothingToRender is returned when both the curve and the point set
	// are empty.
	ErrNothingToRender = errors.New("render: nothing to render")
	// ErrNotFinite is returned when a coordinate of the curve or point set
	// is NaN or infinite.
	ErrNotFinite = errors.New("render: non-finite coordinate")
)

// SVG renders a curve plot to a string of SVG markup.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(c sinecure.Curve, points []sinecure.Point, style Style) (string, error) {
	sb := &strings.Builder{}
	if err := WriteSVG(sb, c, points, style); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteSVG renders a curve plot as a standalone SVG document and writes it
// to w. The curve is drawn as a polyline through its samples, points as
// filled circles on top of it. Title, axis labels, grid and legend follow
// style; empty labels are omitted. Data with NaN or infinite coordinates
// is rejected with [ErrNotFinite] before anything is written.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, c sinecure.Curve, points []sinecure.Point, style Style) error {
	if len(c) == 0 && len(points) == 0 {
		return ErrNothingToRender
	}

	bbox := dataBounds(c, points)
	if bbox.IsNaN() || bbox.IsInf() {
		return ErrNotFinite
	}
	plotW := float64(style.Width - 2*style.Margin)
	plotH := float64(style.Height - 2*style.Margin)
	left := float64(style.Margin)
	top := float64(style.Margin)
	// Pixel y grows downward, data y grows upward.
	px := func(pt sinecure.Point) sinecure.Point {
		return sinecure.Pt(
			left+(pt.X-bbox.MinX())/bbox.Width()*plotW,
			top+plotH-(pt.Y-bbox.MinY())/bbox.Height()*plotH,
		)
	}

	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		s := strconv.FormatFloat(n, 'f', 2, 64)
		s = strings.TrimRight(s, "0")
		return strings.TrimRight(s, ".")
	}

	writef("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\" font-family=\"sans-serif\">\n",
		style.Width, style.Height, style.Width, style.Height)
	writef("  <rect width=\"100%%\" height=\"100%%\" fill=%q />\n", style.Background)

	xTicks := ticks(bbox.MinX(), bbox.MaxX())
	yTicks := ticks(bbox.MinY(), bbox.MaxY())
	if style.Grid {
		for _, v := range xTicks {
			x, _ := px(sinecure.Pt(v, bbox.MinY())).Splat()
			writef("  <line x1=%q y1=%q x2=%q y2=%q stroke=%q stroke-opacity=\"0.4\" />\n",
				format(x), format(top), format(x), format(top+plotH), style.GridColor)
		}
		for _, v := range yTicks {
			_, y := px(sinecure.Pt(bbox.MinX(), v)).Splat()
			writef("  <line x1=%q y1=%q x2=%q y2=%q stroke=%q stroke-opacity=\"0.4\" />\n",
				format(left), format(y), format(left+plotW), format(y), style.GridColor)
		}
	}

	writef("  <rect x=%q y=%q width=%q height=%q fill=\"none\" stroke=%q stroke-opacity=\"0.6\" />\n",
		format(left), format(top), format(plotW), format(plotH), style.TextColor)
	for _, v := range xTicks {
		x, _ := px(sinecure.Pt(v, bbox.MinY())).Splat()
		writef("  <line x1=%q y1=%q x2=%q y2=%q stroke=%q />\n",
			format(x), format(top+plotH), format(x), format(top+plotH+5), style.TextColor)
		writef("  <text x=%q y=%q fill=%q font-size=\"10\" text-anchor=\"middle\">%s</text>\n",
			format(x), format(top+plotH+18), style.TextColor, tickLabel(v))
	}
	for _, v := range yTicks {
		_, y := px(sinecure.Pt(bbox.MinX(), v)).Splat()
		writef("  <line x1=%q y1=%q x2=%q y2=%q stroke=%q />\n",
			format(left-5), format(y), format(left), format(y), style.TextColor)
		writef("  <text x=%q y=%q fill=%q font-size=\"10\" text-anchor=\"end\" dominant-baseline=\"middle\">%s</text>\n",
			format(left-8), format(y), style.TextColor, tickLabel(v))
	}

	if len(c) > 0 {
		writef("  <path fill=\"none\" stroke=%q stroke-width=\"%s\" stroke-opacity=\"%s\" d=\"",
			style.CurveColor, tickLabel(style.CurveWidth), tickLabel(style.CurveOpacity))
		for i, pt := range c {
			x, y := px(pt).Splat()
			if i == 0 {
				writef("M%s,%s", format(x), format(y))
			} else {
				writef(" L%s,%s", format(x), format(y))
			}
		}
		writef("\" />\n")
	}
	for _, pt := range points {
		cx, cy := px(pt).Splat()
		writef("  <circle cx=%q cy=%q r=%q fill=%q />\n",
			format(cx), format(cy), tickLabel(style.PointRadius), style.PointColor)
	}

	if style.Title != "" {
		writef("  <text x=%q y=%q fill=%q font-size=\"16\" text-anchor=\"middle\">%s</text>\n",
			format(float64(style.Width)/2), format(top-20), style.TextColor, html.EscapeString(style.Title))
	}
	if style.XLabel != "" {
		writef("  <text x=%q y=%q fill=%q font-size=\"12\" text-anchor=\"middle\">%s</text>\n",
			format(left+plotW/2), format(top+plotH+40), style.TextColor, html.EscapeString(style.XLabel))
	}
	if style.YLabel != "" {
		x, y := left-40, top+plotH/2
		writef("  <text x=%q y=%q fill=%q font-size=\"12\" text-anchor=\"middle\" transform=\"rotate(-90 %s %s)\">%s</text>\n",
			format(x), format(y), style.TextColor, format(x), format(y), html.EscapeString(style.YLabel))
	}

	writeLegend(writef, c, points, style)

	writef("</svg>\n")
	return err
}

// writeLegend draws the two-entry legend in the top right corner of the
// plot area.
func writeLegend(writef func(string, ...any), c sinecure.Curve, points []sinecure.Point, style Style) {
	x := float64(style.Width-style.Margin) - 160
	y := float64(style.Margin) + 20
	entry := func(label string, swatch func(cx, cy float64)) {
		if label == "" {
			return
		}
		swatch(x, y-4)
		writef("  <text x=\"%.0f\" y=\"%.0f\" fill=%q font-size=\"12\">%s</text>\n",
			x+30, y, style.TextColor, html.EscapeString(label))
		y += 20
	}
	if len(c) > 0 {
		entry(style.CurveLabel, func(cx, cy float64) {
			writef("  <line x1=\"%.0f\" y1=\"%.0f\" x2=\"%.0f\" y2=\"%.0f\" stroke=%q stroke-width=\"%s\" />\n",
				cx, cy, cx+22, cy, style.CurveColor, tickLabel(style.CurveWidth))
		})
	}
	if len(points) > 0 {
		entry(style.PointLabel, func(cx, cy float64) {
			writef("  <circle cx=\"%.0f\" cy=\"%.0f\" r=%q fill=%q />\n",
				cx+11, cy, tickLabel(style.PointRadius), style.PointColor)
		})
	}
}

// dataBounds returns the joint bounding box of curve and points, padded so
// strokes never touch the plot edge and degenerate spans stay drawable.
func dataBounds(c sinecure.Curve, points []sinecure.Point) sinecure.Rect {
	var bbox sinecure.Rect
	seeded := false
	for _, pts := range [][]sinecure.Point{c, points} {
		for _, pt := range pts {
			if !seeded {
				bbox = sinecure.NewRectFromPoints(pt, pt)
				seeded = true
			} else {
				bbox = bbox.UnionPoint(pt)
			}
		}
	}
	if bbox.Width() == 0 {
		bbox = bbox.Inflate(1, 0)
	}
	if bbox.Height() == 0 {
		bbox = bbox.Inflate(0, 1)
	}
	return bbox.Inflate(0.05*bbox.Width(), 0.05*bbox.Height())
}

// ticks returns about five axis tick positions covering [lo, hi], stepped
// at a power of ten times 1, 2 or 5.
func ticks(lo, hi float64) []float64 {
	step := niceStep(hi - lo)
	var vs []float64
	for i := math.Ceil(lo / step); i*step <= hi; i++ {
		v := i * step
		if v == 0 {
			// Normalize negative zero so the label reads "0".
			v = 0
		}
		vs = append(vs, v)
	}
	return vs
}

func niceStep(span float64) float64 {
	raw := span / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw >= 5*mag:
		return 5 * mag
	case raw >= 2*mag:
		return 2 * mag
	default:
		return mag
	}
}

// tickLabel formats a value for display, keeping float noise out of the
// labels.
func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
