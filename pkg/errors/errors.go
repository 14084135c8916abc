// Package errors provides structured error types for the labelator application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes map one-to-one onto the failure modes of label normalization
// and rendering:
//   - INVALID_*: caller supplied something the grid cannot accept
//   - OUT_OF_BOUNDS / TOO_MANY_LABELS: input exceeds the sheet's grid
//   - UNSUPPORTED_FORMAT / MISSING_EXTENSION: bad output filename
//   - EXPORT_UNAVAILABLE: the external converter is not installed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidOption, "invalid order value %q", order)
//	if errors.Is(err, errors.ErrCodeInvalidOption) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "convert %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidOption Code = "INVALID_OPTION"
	ErrCodeInvalidSheet  Code = "INVALID_SHEET"

	// Grid capacity errors
	ErrCodeOutOfBounds   Code = "OUT_OF_BOUNDS"
	ErrCodeTooManyLabels Code = "TOO_MANY_LABELS"

	// Output filename errors
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	ErrCodeMissingExtension  Code = "MISSING_EXTENSION"

	// Export errors
	ErrCodeExportUnavailable Code = "EXPORT_UNAVAILABLE"
	ErrCodeRenderFailed      Code = "RENDER_FAILED"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// ConverterError carries the captured output of a failed conversion run.
type ConverterError struct {
	Binary string // Converter binary that was invoked
	Output string // Combined stderr output, if any
}

// Error implements the error interface.
func (e *ConverterError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s failed: %s", e.Binary, e.Output)
	}
	return fmt.Sprintf("%s failed", e.Binary)
}

// Code returns the error code for this error type.
func (e *ConverterError) Code() Code {
	return ErrCodeRenderFailed
}
