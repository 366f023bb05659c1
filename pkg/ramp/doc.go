// Package ramp discretizes continuous color gradients into fixed-size lookup
// tables.
//
// A [Gradient] is any mapping from a parameter t in [0, 1] to a [Sample].
// [SampleRamp] evaluates a gradient at count evenly spaced parameters,
// t_k = k / (count-1), including both endpoints, and returns them in
// ascending order as a [Table]. With the default count of 255 the table is
// indexed directly by an 8-bit quantization code (see package quant):
//
//	table, err := ramp.SampleRamp(ramp.PuRd, ramp.DefaultCount)
//	c := table.Lookup(code)
//
// # Gradients
//
// [Stops] builds a gradient from color stops and blends neighbours in RGB,
// CIE L*a*b*, or HCL space using go-colorful. The named gradients
// ("purd", "viridis", "greys", "sci") are available through [Lookup]; a "_r"
// suffix reverses any of them. [GradientFunc] adapts a plain function, so any
// gradient source can be sampled without changing the sampler.
//
// Tables perform no interpolation between entries; that is left to the
// consumer.
package ramp
