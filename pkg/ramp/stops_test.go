package ramp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstucker/particles/pkg/errors"
)

func TestStopsEndpoints(t *testing.T) {
	s, err := NewStops(BlendRGB, "#000000", "#ffffff")
	require.NoError(t, err)

	assert.Equal(t, "#000000", s.At(0).Hex())
	assert.Equal(t, "#ffffff", s.At(1).Hex())
	assert.Equal(t, "#808080", s.At(0.5).Hex())
	assert.Equal(t, 1.0, s.At(0.5).A)

	assert.Equal(t, "#000000", s.At(-3).Hex(), "t below 0 clamps")
	assert.Equal(t, "#ffffff", s.At(7).Hex(), "t above 1 clamps")
}

func TestStopsBlendSpaces(t *testing.T) {
	rgb, err := NewStops(BlendRGB, "#ff0000", "#0000ff")
	require.NoError(t, err)
	lab := rgb
	lab.Space = BlendLab
	hcl := rgb
	hcl.Space = BlendHCL

	assert.Equal(t, "#800080", rgb.At(0.5).Hex())
	assert.NotEqual(t, rgb.At(0.5).Hex(), lab.At(0.5).Hex())
	assert.NotEqual(t, rgb.At(0.5).Hex(), hcl.At(0.5).Hex())

	for _, s := range []Stops{rgb, lab, hcl} {
		assert.Equal(t, "#ff0000", s.At(0).Hex(), "%s start", s.Space)
		assert.Equal(t, "#0000ff", s.At(1).Hex(), "%s end", s.Space)
	}
}

func TestStopsSingleAndEmpty(t *testing.T) {
	single, err := NewStops(BlendLab, "#123456")
	require.NoError(t, err)
	assert.Equal(t, "#123456", single.At(0.3).Hex())

	assert.Equal(t, Sample{}, Stops{}.At(0.5))

	_, err = NewStops(BlendRGB)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidGradient))

	_, err = NewStops(BlendRGB, "#00ff00", "not-a-color")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidGradient))
}

func TestStopsPositions(t *testing.T) {
	base, err := NewStops(BlendRGB, "#000000", "#ffffff", "#ff0000")
	require.NoError(t, err)

	s, err := base.WithPositions(0, 0.8, 1)
	require.NoError(t, err)

	assert.Equal(t, "#000000", s.At(0).Hex())
	assert.Equal(t, "#808080", s.At(0.4).Hex())
	assert.Equal(t, "#ffffff", s.At(0.8).Hex())
	assert.Equal(t, "#ff8080", s.At(0.9).Hex())
	assert.Equal(t, "#ff0000", s.At(1).Hex())

	_, err = base.WithPositions(0, 1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidGradient), "length mismatch")

	_, err = base.WithPositions(0, 0.9, 0.5)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidGradient), "descending")

	_, err = base.WithPositions(-0.1, 0.5, 1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidGradient), "out of range")
}

func TestParseBlendSpace(t *testing.T) {
	for _, name := range []string{"rgb", "LAB", "Hcl"} {
		space, err := ParseBlendSpace(name)
		require.NoError(t, err)
		assert.Equal(t, name, map[BlendSpace]string{BlendRGB: "rgb", BlendLab: "LAB", BlendHCL: "Hcl"}[space])
	}

	_, err := ParseBlendSpace("cmyk")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	assert.Equal(t, "unknown", BlendSpace(9).String())
}
