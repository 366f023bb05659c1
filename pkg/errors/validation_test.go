package errors

import (
	"math"
	"testing"
)

func TestValidateFinite(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"negative", -3.5, false},
		{"large", 1e300, false},

		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFinite("x", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFinite(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateFinite(%v) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 42, false},

		{"negative", -0.001, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNonNegative("distance", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNonNegative(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDivisor(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		wantCode Code
	}{
		{"positive", 100, ""},
		{"tiny", 1e-12, ""},
		{"zero", 0, ErrCodeDivisionByZero},
		{"negative", -1, ErrCodeDivisionByZero},
		{"NaN", math.NaN(), ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDivisor("repulsion_range", tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateDivisor(%v) code = %q, want %q", tt.input, got, tt.wantCode)
			}
		})
	}
}

func TestValidateCount(t *testing.T) {
	if err := ValidateCount("count", 255); err != nil {
		t.Errorf("ValidateCount(255) error = %v", err)
	}
	for _, n := range []int{0, -1} {
		err := ValidateCount("count", n)
		if !Is(err, ErrCodeInvalidCount) {
			t.Errorf("ValidateCount(%d) = %v, want %s", n, err, ErrCodeInvalidCount)
		}
	}
}
