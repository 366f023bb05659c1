// Package quant maps continuous values onto the 8-bit code range [0, 255]
// and back.
//
// The mapping is linear:
//
//	code  = 255 * (value - min) / (max - min)
//	value = code * (max/255 - min/255) + min
//
// [Encode] and [Decode] work on real-valued codes and round-trip exactly up
// to floating-point error. [Range.EncodeByte] rounds and saturates into a
// uint8 for storage; decoding a byte reconstructs the value to within half
// a quantization step, see [Range.Step].
//
// Values outside [min, max] are not errors: they produce codes outside
// [0, 255] (or saturate, for bytes). A range whose bounds are equal has no
// defined mapping and fails with errors.ErrCodeDegenerateRange. Ranges with
// min > max are valid and reverse the direction of the mapping.
package quant
