package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/sstucker/particles/pkg/errors"
	"github.com/sstucker/particles/pkg/force"
)

// Series is one polyline on a chart. X and Y have equal length.
type Series struct {
	Name  string
	X, Y  []float64
	Color string // CSS color; a palette color is used when empty
}

// SweepSeries converts sweep points to a series.
func SweepSeries(name string, pts []force.Point) Series {
	s := Series{Name: name, X: make([]float64, len(pts)), Y: make([]float64, len(pts))}
	for i, pt := range pts {
		s.X[i], s.Y[i] = pt.Distance, pt.Force
	}
	return s
}

var palette = []string{"#1f77b4", "#d62728", "#2ca02c", "#9467bd", "#ff7f0e", "#17becf"}

const (
	marginLeft   = 64.0
	marginRight  = 24.0
	marginTop    = 40.0
	marginBottom = 48.0
	tickCount    = 5
	fontFamily   = "Helvetica, Arial, sans-serif"
)

// ChartOption configures chart rendering.
type ChartOption func(*chart)

type chart struct {
	title          string
	xLabel, yLabel string
	width, height  float64
	xr, yr         *[2]float64
}

// WithTitle sets the chart title.
func WithTitle(s string) ChartOption { return func(c *chart) { c.title = s } }

// WithAxisLabels sets the x and y axis captions.
func WithAxisLabels(x, y string) ChartOption {
	return func(c *chart) { c.xLabel, c.yLabel = x, y }
}

// WithSize sets the overall SVG size in pixels (default 720x420).
func WithSize(w, h float64) ChartOption {
	return func(c *chart) { c.width, c.height = w, h }
}

// WithXRange fixes the x axis instead of fitting it to the data.
func WithXRange(lo, hi float64) ChartOption {
	return func(c *chart) { c.xr = &[2]float64{lo, hi} }
}

// WithYRange fixes the y axis instead of fitting it to the data.
func WithYRange(lo, hi float64) ChartOption {
	return func(c *chart) { c.yr = &[2]float64{lo, hi} }
}

// RenderChartSVG plots series as an SVG line chart.
// It fails if there are no points, a series has mismatched X and Y, or a
// value is not finite.
func RenderChartSVG(series []Series, opts ...ChartOption) ([]byte, error) {
	c := chart{width: 720, height: 420}
	for _, opt := range opts {
		opt(&c)
	}
	if c.width <= marginLeft+marginRight || c.height <= marginTop+marginBottom {
		return nil, errors.New(errors.ErrCodeInvalidInput, "chart size %gx%g is too small", c.width, c.height)
	}

	xlo, xhi, ylo, yhi, err := dataExtent(series)
	if err != nil {
		return nil, err
	}
	if c.xr != nil {
		xlo, xhi = c.xr[0], c.xr[1]
	}
	if c.yr != nil {
		ylo, yhi = c.yr[0], c.yr[1]
	} else {
		pad := (yhi - ylo) * 0.05
		ylo, yhi = ylo-pad, yhi+pad
	}
	xlo, xhi = widen(xlo, xhi)
	ylo, yhi = widen(ylo, yhi)

	pw := c.width - marginLeft - marginRight
	ph := c.height - marginTop - marginBottom
	px := func(x float64) float64 { return marginLeft + (x-xlo)/(xhi-xlo)*pw }
	py := func(y float64) float64 { return marginTop + (yhi-y)/(yhi-ylo)*ph }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.width, c.height, c.width, c.height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")

	if c.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="%s" font-size="16">%s</text>`+"\n",
			c.width/2, marginTop/2+6, fontFamily, escapeXML(c.title))
	}

	renderAxes(&buf, c, xlo, xhi, ylo, yhi, px, py)

	if ylo < 0 && yhi > 0 {
		fmt.Fprintf(&buf, `  <line class="zero" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#888" stroke-dasharray="4 3"/>`+"\n",
			marginLeft, py(0), marginLeft+pw, py(0))
	}

	fmt.Fprintf(&buf, `  <clipPath id="plot-area"><rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"/></clipPath>`+"\n",
		marginLeft, marginTop, pw, ph)
	for i, s := range series {
		color := s.Color
		if color == "" {
			color = palette[i%len(palette)]
		}
		fmt.Fprintf(&buf, `  <polyline class="series" data-name="%s" fill="none" stroke="%s" stroke-width="1.5" clip-path="url(#plot-area)" points="`,
			escapeXML(s.Name), escapeXML(color))
		for j := range s.X {
			if j > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(&buf, "%.2f,%.2f", px(s.X[j]), py(s.Y[j]))
		}
		buf.WriteString(`"/>` + "\n")
	}

	if len(series) > 1 {
		renderLegend(&buf, series, c.width)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func renderAxes(buf *bytes.Buffer, c chart, xlo, xhi, ylo, yhi float64, px, py func(float64) float64) {
	pw := c.width - marginLeft - marginRight
	ph := c.height - marginTop - marginBottom
	bottom := marginTop + ph

	fmt.Fprintf(buf, `  <rect class="frame" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#333"/>`+"\n",
		marginLeft, marginTop, pw, ph)

	for i := 0; i <= tickCount; i++ {
		x := xlo + (xhi-xlo)*float64(i)/tickCount
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#333"/>`+"\n", px(x), bottom, px(x), bottom+4)
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="11">%s</text>`+"\n",
			px(x), bottom+16, fontFamily, tickLabel(x))

		y := ylo + (yhi-ylo)*float64(i)/tickCount
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#333"/>`+"\n", marginLeft-4, py(y), marginLeft, py(y))
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="end" font-family="%s" font-size="11">%s</text>`+"\n",
			marginLeft-6, py(y)+4, fontFamily, tickLabel(y))
	}

	if c.xLabel != "" {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="12">%s</text>`+"\n",
			marginLeft+pw/2, c.height-10, fontFamily, escapeXML(c.xLabel))
	}
	if c.yLabel != "" {
		fmt.Fprintf(buf, `  <text transform="translate(14 %.2f) rotate(-90)" text-anchor="middle" font-family="%s" font-size="12">%s</text>`+"\n",
			marginTop+ph/2, fontFamily, escapeXML(c.yLabel))
	}
}

func renderLegend(buf *bytes.Buffer, series []Series, width float64) {
	x := width - marginRight - 120
	for i, s := range series {
		color := s.Color
		if color == "" {
			color = palette[i%len(palette)]
		}
		y := marginTop + 14 + float64(i)*16
		fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2"/>`+"\n", x, y-4, x+18, y-4, escapeXML(color))
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="11">%s</text>`+"\n", x+24, y, fontFamily, escapeXML(s.Name))
	}
}

func dataExtent(series []Series) (xlo, xhi, ylo, yhi float64, err error) {
	xlo, ylo = math.Inf(1), math.Inf(1)
	xhi, yhi = math.Inf(-1), math.Inf(-1)
	n := 0
	for _, s := range series {
		if len(s.X) != len(s.Y) {
			return 0, 0, 0, 0, errors.New(errors.ErrCodeInvalidInput, "series %q has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
		}
		for i := range s.X {
			x, y := s.X[i], s.Y[i]
			if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
				return 0, 0, 0, 0, errors.New(errors.ErrCodeInvalidInput, "series %q point %d is not finite", s.Name, i)
			}
			xlo, xhi = min(xlo, x), max(xhi, x)
			ylo, yhi = min(ylo, y), max(yhi, y)
			n++
		}
	}
	if n == 0 {
		return 0, 0, 0, 0, errors.New(errors.ErrCodeInvalidInput, "chart has no points")
	}
	return xlo, xhi, ylo, yhi, nil
}

// widen replaces an empty or inverted axis with a unit span around lo.
func widen(lo, hi float64) (float64, float64) {
	if hi > lo {
		return lo, hi
	}
	return lo - 0.5, lo + 0.5
}

func tickLabel(v float64) string {
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
