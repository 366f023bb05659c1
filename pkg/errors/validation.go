package errors

import "math"

// ValidateFinite rejects NaN and infinite values.
// The name identifies the parameter in the error message.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeInvalidInput, "%s is NaN", name)
	}
	if math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s is infinite", name)
	}
	return nil
}

// ValidateNonNegative rejects values below zero, NaN, and infinities.
func ValidateNonNegative(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must be >= 0, got %g", name, v)
	}
	return nil
}

// ValidateDivisor rejects a value that will be used as a divisor.
// Zero and negative values are reported as DIVISION_BY_ZERO so callers can
// tell a degenerate shape apart from an ordinary out-of-domain input.
func ValidateDivisor(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeDivisionByZero, "%s must be > 0, got %g", name, v)
	}
	return nil
}

// ValidateCount rejects non-positive counts.
func ValidateCount(name string, n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidCount, "%s must be positive, got %d", name, n)
	}
	return nil
}
