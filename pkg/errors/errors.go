// Package errors provides structured error types for the particles library.
//
// Every operation in the library is a pure function that either returns a
// complete result or fails before producing any output. Failures carry a
// machine-readable [Code] so callers can branch on the kind of precondition
// that was violated without parsing messages.
//
// # Error Codes
//
//   - INVALID_INPUT: a value outside the operation's domain (negative distance, NaN)
//   - DIVISION_BY_ZERO: a parameter used as a divisor is zero
//   - DEGENERATE_RANGE: a quantization range with minimum == maximum
//   - INVALID_COUNT: a non-positive sample count
//   - INVALID_FORMAT / INVALID_GRADIENT / INVALID_CONFIG: tooling inputs
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDegenerateRange, "minimum equals maximum (%g)", lo)
//	if errors.Is(err, errors.ErrCodeDegenerateRange) {
//	    // Handle the degenerate range
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "row %d", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Domain precondition errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeDivisionByZero  Code = "DIVISION_BY_ZERO"
	ErrCodeDegenerateRange Code = "DEGENERATE_RANGE"
	ErrCodeInvalidCount    Code = "INVALID_COUNT"
	ErrCodeInvalidGradient Code = "INVALID_GRADIENT"

	// Tooling errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
