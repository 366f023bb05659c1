package quant

import (
	"github.com/sstucker/particles/pkg/errors"
)

// Bounds returns the tightest range covering values.
// It fails for an empty slice or when every value is equal.
func Bounds(values []float64) (Range, error) {
	if len(values) == 0 {
		return Range{}, errors.New(errors.ErrCodeInvalidCount, "no values to bound")
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return NewRange(lo, hi)
}

// EncodeAll byte-encodes every value. On error no codes are returned.
func (r Range) EncodeAll(values []float64) ([]uint8, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	codes := make([]uint8, len(values))
	for i, v := range values {
		if err := errors.ValidateFinite("value", v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "value %d", i)
		}
		codes[i] = toByte(r.encode(v))
	}
	return codes, nil
}

// DecodeAll decodes every byte code.
func (r Range) DecodeAll(codes []uint8) ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	values := make([]float64, len(codes))
	for i, c := range codes {
		values[i] = r.decode(float64(c))
	}
	return values, nil
}
