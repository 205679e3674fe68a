// Package errors provides structured error types for deltabench.
//
// Engine failures in pkg/deltablue are plain sentinel errors. Everything that
// crosses the harness or CLI boundary is wrapped in an [Error] carrying a
// machine-readable [Code], so callers can branch on the category without
// parsing messages.
//
// # Error Codes
//
// Codes follow a category naming convention:
//   - INVALID_*: input or configuration validation failures
//   - UNKNOWN_*: references to things that are not registered
//   - *_FAILED / *_ERROR: failures while doing work
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownWorkload, "unknown workload: %s", name)
//	if errors.Is(err, errors.ErrCodeUnknownWorkload) {
//	    // suggest `deltabench list`
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeBenchmarkFailed, origErr, "workload %s", name)
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
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Lookup errors
	ErrCodeUnknownWorkload Code = "UNKNOWN_WORKLOAD"
	ErrCodeNotFound        Code = "NOT_FOUND"

	// Execution errors
	ErrCodeBenchmarkFailed Code = "BENCHMARK_FAILED"
	ErrCodeCache           Code = "CACHE_ERROR"
	ErrCodeCanceled        Code = "CANCELED"

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
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
