package ramp

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/sstucker/particles/pkg/errors"
)

// DefaultCount is the table size that matches the 8-bit code range.
const DefaultCount = 255

// Sample is an RGBA color with each component in [0, 1].
type Sample struct {
	R, G, B, A float64
}

// NRGBA scales the sample to 8-bit channels, rounding to nearest and
// clamping out-of-range components.
func (s Sample) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(s.R), G: channel(s.G), B: channel(s.B), A: channel(s.A)}
}

// RGBA implements color.Color.
func (s Sample) RGBA() (r, g, b, a uint32) {
	return s.NRGBA().RGBA()
}

// Hex returns the "#rrggbb" form of the color, ignoring alpha.
func (s Sample) Hex() string {
	return colorful.Color{R: s.R, G: s.G, B: s.B}.Clamped().Hex()
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Gradient maps a parameter t in [0, 1] to a color.
type Gradient interface {
	At(t float64) Sample
}

// GradientFunc adapts an ordinary function to the Gradient interface.
type GradientFunc func(t float64) Sample

// At calls f(t).
func (f GradientFunc) At(t float64) Sample { return f(t) }

// Table is an ordered, immutable sequence of color samples.
type Table []Sample

// Lookup returns the entry for a byte code. Codes past the end of the table
// select the last entry, so 255 is valid for a 255-entry table.
// An empty table yields the zero Sample.
func (t Table) Lookup(code uint8) Sample {
	if len(t) == 0 {
		return Sample{}
	}
	i := min(int(code), len(t)-1)
	return t[i]
}

// At returns the entry nearest to parameter u in [0, 1]. u is clamped.
func (t Table) At(u float64) Sample {
	if len(t) == 0 {
		return Sample{}
	}
	if math.IsNaN(u) {
		u = 0
	}
	u = math.Max(0, math.Min(1, u))
	return t[int(math.Round(u*float64(len(t)-1)))]
}

// SampleRamp evaluates g at count evenly spaced parameters over [0, 1],
// both endpoints included. A count of 1 samples t = 0 only.
// Values returned by g are stored as-is.
func SampleRamp(g Gradient, count int) (Table, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "gradient is nil")
	}
	if err := errors.ValidateCount("count", count); err != nil {
		return nil, err
	}

	table := make(Table, count)
	if count == 1 {
		table[0] = g.At(0)
		return table, nil
	}
	last := float64(count - 1)
	for k := range table {
		table[k] = g.At(float64(k) / last)
	}
	return table, nil
}
