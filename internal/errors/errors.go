// Package errors provides structured error types for hop with error
// categorization and wrapping support.
//
// Every failure the service can produce maps to one of a small set of
// ErrorType values: I/O failures, parse failures, config size violations,
// custom-program failures from route executables, and startup configuration
// failures. Handlers and the reload path branch on these types to decide
// between fatal, retained-snapshot, and per-request error behavior.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeIO            ErrorType = "io"
	ErrorTypeParse         ErrorType = "parse"
	ErrorTypeConfigTooBig  ErrorType = "config_oversize"
	ErrorTypeConfigEmpty   ErrorType = "config_empty"
	ErrorTypeCustomProgram ErrorType = "custom_program"
	ErrorTypeNoConfigPath  ErrorType = "no_config_path"
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeInternal      ErrorType = "internal"
)

// HopError is a structured error type with context.
type HopError struct {
	Type    ErrorType
	Message string
	Path    string
	Cause   error
}

// Error implements the error interface.
func (e *HopError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *HopError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison by type.
func (e *HopError) Is(target error) bool {
	var t *HopError
	if errors.As(target, &t) {
		return e.Type == t.Type
	}
	return false
}

// WithPath attaches the file path the error refers to.
func (e *HopError) WithPath(path string) *HopError {
	e.Path = path
	return e
}

// NewIOError wraps a filesystem or process failure.
func NewIOError(message string, cause error) *HopError {
	return &HopError{Type: ErrorTypeIO, Message: message, Cause: cause}
}

// NewParseError wraps a malformed config document or malformed executable
// output.
func NewParseError(message string, cause error) *HopError {
	return &HopError{Type: ErrorTypeParse, Message: message, Cause: cause}
}

// NewConfigTooBigError reports a config document exceeding the size limit.
// Raised before parsing is attempted.
func NewConfigTooBigError(size, limit int64) *HopError {
	return &HopError{
		Type:    ErrorTypeConfigTooBig,
		Message: fmt.Sprintf("config is %d bytes, limit is %d bytes", size, limit),
	}
}

// NewConfigEmptyError reports a zero-byte config document.
func NewConfigEmptyError() *HopError {
	return &HopError{Type: ErrorTypeConfigEmpty, Message: "config is empty"}
}

// NewCustomProgramError carries the stderr text of a route executable that
// exited non-zero.
func NewCustomProgramError(stderr string) *HopError {
	return &HopError{Type: ErrorTypeCustomProgram, Message: stderr}
}

// NewNoConfigPathError reports that no candidate config location was usable.
func NewNoConfigPathError() *HopError {
	return &HopError{Type: ErrorTypeNoConfigPath, Message: "no valid config path was found"}
}

// NewValidationError reports an invalid configuration value.
func NewValidationError(message string) *HopError {
	return &HopError{Type: ErrorTypeValidation, Message: message}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(message string, cause error) *HopError {
	return &HopError{Type: ErrorTypeInternal, Message: message, Cause: cause}
}

// IsType reports whether err is a HopError of the given type.
func IsType(err error, errorType ErrorType) bool {
	var hopErr *HopError
	if errors.As(err, &hopErr) {
		return hopErr.Type == errorType
	}
	return false
}
