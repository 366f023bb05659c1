package render

import (
	"math"
	"strings"
	"testing"

	"github.com/sstucker/particles/pkg/errors"
	"github.com/sstucker/particles/pkg/force"
	"github.com/sstucker/particles/pkg/ramp"
)

func TestRenderChartSVG(t *testing.T) {
	p := force.Params{RepulsionRange: 10, RepulsionStrength: 40, ForceRange: 200, ForceStrength: -5}
	pts, err := force.Sweep(p, 0, 250, 1)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	svg, err := RenderChartSVG([]Series{SweepSeries("force", pts)},
		WithTitle("Force <profile>"),
		WithAxisLabels("distance", "force"),
		WithSize(640, 360),
	)
	if err != nil {
		t.Fatalf("RenderChartSVG: %v", err)
	}
	out := string(svg)

	checks := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 640.0 360.0"`,
		"Force &lt;profile&gt;",
		`class="zero"`,
		`data-name="force"`,
		">distance</text>",
		"</svg>\n",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(out, "<polyline"); n != 1 {
		t.Errorf("polylines = %d, want 1", n)
	}
	if strings.Contains(out, "legend") {
		t.Error("single series should not draw a legend")
	}
}

func TestRenderChartSVGNoZeroLine(t *testing.T) {
	svg, err := RenderChartSVG([]Series{{Name: "up", X: []float64{0, 1, 2}, Y: []float64{1, 2, 3}}})
	if err != nil {
		t.Fatalf("RenderChartSVG: %v", err)
	}
	if strings.Contains(string(svg), `class="zero"`) {
		t.Error("all-positive data should not draw a zero line")
	}
}

func TestRenderChartSVGFlatSeries(t *testing.T) {
	svg, err := RenderChartSVG([]Series{{Name: "flat", X: []float64{3}, Y: []float64{0}}})
	if err != nil {
		t.Fatalf("RenderChartSVG: %v", err)
	}
	if strings.Contains(string(svg), "NaN") || strings.Contains(string(svg), "Inf") {
		t.Errorf("degenerate extent produced non-finite coordinates:\n%s", svg)
	}
}

func TestRenderChartSVGMultipleSeries(t *testing.T) {
	series := []Series{
		{Name: "a", X: []float64{0, 1}, Y: []float64{0, 1}},
		{Name: "b", X: []float64{0, 1}, Y: []float64{1, 0}, Color: "black"},
	}
	svg, err := RenderChartSVG(series, WithYRange(-1, 2), WithXRange(0, 2))
	if err != nil {
		t.Fatalf("RenderChartSVG: %v", err)
	}
	out := string(svg)
	if n := strings.Count(out, "<polyline"); n != 2 {
		t.Errorf("polylines = %d, want 2", n)
	}
	if !strings.Contains(out, `stroke="black"`) {
		t.Error("explicit series color not used")
	}
	if !strings.Contains(out, `stroke="`+palette[0]+`"`) {
		t.Error("palette color not used for first series")
	}
}

func TestRenderChartSVGErrors(t *testing.T) {
	tests := []struct {
		name   string
		series []Series
		opts   []ChartOption
	}{
		{"no series", nil, nil},
		{"empty series", []Series{{Name: "e"}}, nil},
		{"mismatched", []Series{{X: []float64{1, 2}, Y: []float64{1}}}, nil},
		{"nan", []Series{{X: []float64{1}, Y: []float64{math.NaN()}}}, nil},
		{"too small", []Series{{X: []float64{1}, Y: []float64{1}}}, []ChartOption{WithSize(50, 50)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderChartSVG(tt.series, tt.opts...)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestRenderRampSVG(t *testing.T) {
	table, err := ramp.SampleRamp(ramp.Greys, 4)
	if err != nil {
		t.Fatalf("SampleRamp: %v", err)
	}
	table[1].A = 0.5

	svg, err := RenderRampSVG(table, 400, 40)
	if err != nil {
		t.Fatalf("RenderRampSVG: %v", err)
	}
	out := string(svg)

	if n := strings.Count(out, "<rect"); n != 4 {
		t.Errorf("rects = %d, want 4", n)
	}
	for _, want := range []string{`fill="#ffffff" fill-opacity="1"`, `fill="#000000"`, `fill-opacity="0.502"`, `x="300.000"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderRampSVGErrors(t *testing.T) {
	if _, err := RenderRampSVG(nil, 100, 10); !errors.Is(err, errors.ErrCodeInvalidCount) {
		t.Errorf("empty table err = %v, want %s", err, errors.ErrCodeInvalidCount)
	}
	if _, err := RenderRampSVG(ramp.Table{{A: 1}}, 0, 10); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("zero width err = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.svg", FormatSVG},
		{"OUT.PNG", FormatPNG},
		{"dir/chart.pdf", FormatPDF},
	}
	for _, tt := range tests {
		got, err := FormatOf(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatOf(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatOf("out.jpg"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("FormatOf(out.jpg) err = %v, want %s", err, errors.ErrCodeUnsupported)
	}
}

func TestConvertSVGPassthrough(t *testing.T) {
	in := []byte("<svg/>")
	out, err := Convert(in, FormatSVG, 1)
	if err != nil || string(out) != string(in) {
		t.Errorf("Convert(svg) = %q, %v", out, err)
	}
}

func TestToPNGRejectsScale(t *testing.T) {
	if _, err := ToPNG([]byte("<svg/>"), 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}
