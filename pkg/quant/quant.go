package quant

import (
	"math"

	"github.com/sstucker/particles/pkg/errors"
)

// Levels is the largest code. Codes span [0, Levels].
const Levels = 255

// inv255 is the reciprocal of Levels used by the decode direction.
const inv255 = 1.0 / Levels

// Range is a pair of quantization bounds.
type Range struct {
	Min float64 `json:"min" toml:"min" yaml:"min"`
	Max float64 `json:"max" toml:"max" yaml:"max"`
}

// NewRange returns a validated range.
func NewRange(minimum, maximum float64) (Range, error) {
	r := Range{Min: minimum, Max: maximum}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate checks that the bounds are finite and distinct.
func (r Range) Validate() error {
	if err := errors.ValidateFinite("minimum", r.Min); err != nil {
		return err
	}
	if err := errors.ValidateFinite("maximum", r.Max); err != nil {
		return err
	}
	if r.Min == r.Max {
		return errors.New(errors.ErrCodeDegenerateRange, "minimum equals maximum (%g)", r.Min)
	}
	if math.IsInf(r.Max-r.Min, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "range [%g, %g] overflows", r.Min, r.Max)
	}
	return nil
}

// Encode maps value onto the code scale. No clamping is performed.
func (r Range) Encode(value float64) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if err := errors.ValidateFinite("value", value); err != nil {
		return 0, err
	}
	return r.encode(value), nil
}

// Decode maps a code back onto the value scale. No clamping is performed.
func (r Range) Decode(code float64) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if err := errors.ValidateFinite("code", code); err != nil {
		return 0, err
	}
	return r.decode(code), nil
}

// EncodeByte maps value to the nearest code, saturating at 0 and 255.
// Halves round away from zero.
func (r Range) EncodeByte(value float64) (uint8, error) {
	code, err := r.Encode(value)
	if err != nil {
		return 0, err
	}
	return toByte(code), nil
}

// DecodeByte maps a stored byte code back onto the value scale.
func (r Range) DecodeByte(b uint8) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r.decode(float64(b)), nil
}

// Step returns the width of one quantization level, |max - min| / 255.
// Byte round-trips reconstruct in-range values to within Step()/2.
func (r Range) Step() float64 {
	return math.Abs(r.Max-r.Min) / Levels
}

// Mid returns the value halfway between the bounds.
func (r Range) Mid() float64 {
	return r.Min + (r.Max-r.Min)/2
}

// Contains reports whether v lies between the bounds, inclusive.
// It is direction-agnostic.
func (r Range) Contains(v float64) bool {
	lo, hi := min(r.Min, r.Max), max(r.Min, r.Max)
	return v >= lo && v <= hi
}

func (r Range) encode(v float64) float64 {
	// Dividing first keeps encode(max) at exactly Levels.
	return Levels * ((v - r.Min) / (r.Max - r.Min))
}

func (r Range) decode(code float64) float64 {
	return code*(inv255*r.Max-inv255*r.Min) + r.Min
}

func toByte(code float64) uint8 {
	c := math.Round(code)
	switch {
	case c <= 0:
		return 0
	case c >= Levels:
		return Levels
	default:
		return uint8(c)
	}
}

// Encode maps value from [minimum, maximum] onto the code scale [0, 255].
func Encode(value, minimum, maximum float64) (float64, error) {
	return Range{Min: minimum, Max: maximum}.Encode(value)
}

// Decode maps code from [0, 255] back onto [minimum, maximum].
func Decode(code, minimum, maximum float64) (float64, error) {
	return Range{Min: minimum, Max: maximum}.Decode(code)
}
