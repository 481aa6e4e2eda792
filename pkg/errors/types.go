package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a catalog failure.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindOutOfRange   Kind = "OUT_OF_RANGE"
	KindForbidden    Kind = "FORBIDDEN"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindValidation   Kind = "VALIDATION"
	KindConflict     Kind = "CONFLICT"
	KindStorage      Kind = "STORAGE"
)

// Error is the failure variant every service operation returns: a structured
// kind plus a human-readable message, optionally wrapping the storage fault
// that caused it. No other error shape crosses a service boundary.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (caused by: %v)", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(cause error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Wrapf attaches a kind and formatted message to an underlying error.
func Wrapf(cause error, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Ensure codifies the propagation policy: an Error from a nested call passes
// through verbatim so its diagnostic message survives, while any other
// failure is wrapped as a storage fault carrying the operation's fixed
// fallback message.
func Ensure(err error, fallback string) *Error {
	var catalogErr *Error
	if errors.As(err, &catalogErr) {
		return catalogErr
	}
	return Wrap(err, KindStorage, fallback)
}

// KindOf extracts the kind from an error, defaulting to storage.
func KindOf(err error) Kind {
	var catalogErr *Error
	if errors.As(err, &catalogErr) {
		return catalogErr.Kind
	}
	return KindStorage
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Message returns the human-readable message for err.
func Message(err error) string {
	var catalogErr *Error
	if errors.As(err, &catalogErr) {
		return catalogErr.Message
	}
	return err.Error()
}

// HTTPStatus maps an error kind to the HTTP status the transport returns.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindOutOfRange, KindValidation:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
