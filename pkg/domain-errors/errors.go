// Package domainerrors defines the coded error values used across the service.
//
// Services and stores return these instead of raising transport-level errors;
// the HTTP boundary (pkg/platform/httputil) is the only place codes are
// translated to status codes.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for boundary translation and for callers that need
// to branch on the failure kind without string matching.
type Code string

const (
	// CodeValidation marks malformed or out-of-range input fields. These are
	// detected before any side effect occurs.
	CodeValidation Code = "validation_error"
	// CodeBadRequest marks structurally broken requests (unreadable body).
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks lookups for records that do not exist.
	CodeNotFound Code = "not_found"
	// CodeUnavailable marks a dependency (the document store) being unreachable.
	CodeUnavailable Code = "service_unavailable"
	// CodeInternal marks storage and other server-side failures. The message
	// is logged but never returned to the caller.
	CodeInternal Code = "internal_error"
)

// Error is the concrete coded error type.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New creates a coded error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error. The cause stays
// reachable through errors.Unwrap for logging; only Code and Message cross
// the HTTP boundary.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in this package.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the message from err, empty for foreign errors.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
