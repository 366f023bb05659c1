// Package render draws force sweeps and color ramps as SVG.
//
// # Charts
//
// [RenderChartSVG] plots one or more [Series] as polylines inside a framed
// plot area with tick labels and a dashed zero line:
//
//	pts, _ := force.Sweep(p, 0, 250, 1)
//	svg, err := render.RenderChartSVG(
//	    []render.Series{render.SweepSeries("force", pts)},
//	    render.WithTitle("Force profile"),
//	    render.WithAxisLabels("distance", "force"),
//	)
//
// Axis ranges are derived from the data unless set with [WithXRange] or
// [WithYRange].
//
// # Swatches
//
// [RenderRampSVG] draws a sampled [ramp.Table] as a strip of adjacent
// rectangles, one per sample, left to right.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [ramp.Table]: github.com/sstucker/particles/pkg/ramp.Table
package render
