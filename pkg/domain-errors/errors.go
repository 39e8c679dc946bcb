// Package domainerrors provides coded errors for the domain layer.
//
// Services return these instead of framework-specific exception types so
// transports can map a small, stable set of codes to their own status
// vocabulary. Stores return pkg/platform/sentinel errors; services translate
// them into coded errors at the boundary.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error for transport mapping and retry decisions.
type Code string

const (
	// CodeValidation marks malformed or missing required input.
	CodeValidation Code = "validation"
	// CodeBadRequest marks a structurally invalid request (nil id, bad range).
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks an operation that targeted a missing entity.
	CodeNotFound Code = "not_found"
	// CodeConflict marks a uniqueness or state conflict.
	CodeConflict Code = "conflict"
	// CodeInvariantViolation marks a domain invariant breach.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeUnauthorized marks missing or invalid credentials.
	CodeUnauthorized Code = "unauthorized"
	// CodeForbidden marks an authenticated but disallowed request.
	CodeForbidden Code = "forbidden"
	// CodeInternal marks infrastructure failures. Descriptions are never
	// exposed to callers over the wire.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error. Message is safe to show callers for
// non-internal codes.
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
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error. The cause stays
// reachable through errors.Is / errors.As.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return New(code, message)
	}
	return &Error{Code: code, Message: message, cause: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.cause
		de = nil
	}
	return false
}

// CodeOf returns the outermost code in the chain, or CodeInternal when the
// error carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// Is defers to errors.Is; kept so call sites read uniformly with New/Wrap.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
