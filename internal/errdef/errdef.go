// Package errdef defines the error classes the HTTP layer knows how to map to
// status codes. Services wrap failures using the NewX constructors and callers
// classify them using the IsX predicates, so no layer ever matches on error
// strings.
package errdef

import (
	"errors"
	"fmt"
)

// NewBadRequest creates an error representing a malformed or invalid request.
func NewBadRequest(format string, a ...any) error {
	return badRequest{fmt.Errorf(format, a...)}
}

type badRequest struct{ error }

// IsBadRequest returns true if err represents a malformed or invalid request.
func IsBadRequest(err error) bool {
	var e badRequest
	return errors.As(err, &e)
}

// NewUnauthorized creates an error representing a missing or invalid session.
func NewUnauthorized(format string, a ...any) error {
	return unauthorized{fmt.Errorf(format, a...)}
}

type unauthorized struct{ error }

// IsUnauthorized returns true if err represents a missing or invalid session.
func IsUnauthorized(err error) bool {
	var e unauthorized
	return errors.As(err, &e)
}

// NewForbidden creates an error representing an authenticated caller lacking
// the membership or role an operation requires.
func NewForbidden(format string, a ...any) error {
	return forbidden{fmt.Errorf(format, a...)}
}

type forbidden struct{ error }

// IsForbidden returns true if err represents a denied operation.
func IsForbidden(err error) bool {
	var e forbidden
	return errors.As(err, &e)
}

// NewNotFound creates an error representing a resource that could not be found.
func NewNotFound(format string, a ...any) error {
	return notFound{fmt.Errorf(format, a...)}
}

type notFound struct{ error }

// IsNotFound returns true if err represents a resource that could not be found.
func IsNotFound(err error) bool {
	var e notFound
	return errors.As(err, &e)
}

// NewDuplicated creates an error representing a record that already exists.
func NewDuplicated(format string, a ...any) error {
	return duplicated{fmt.Errorf(format, a...)}
}

type duplicated struct{ error }

// IsDuplicated returns true if err represents a record that already exists.
func IsDuplicated(err error) bool {
	var e duplicated
	return errors.As(err, &e)
}

// NewConflict creates an error representing a conflicting state.
func NewConflict(format string, a ...any) error {
	return conflict{fmt.Errorf(format, a...)}
}

type conflict struct{ error }

// IsConflict returns true if err represents a conflicting state.
func IsConflict(err error) bool {
	var e conflict
	return errors.As(err, &e)
}

// NewUnsupportedMediaType creates an error representing a request with a
// content type the endpoint does not accept.
func NewUnsupportedMediaType(format string, a ...any) error {
	return unsupportedMediaType{fmt.Errorf(format, a...)}
}

type unsupportedMediaType struct{ error }

// IsUnsupportedMediaType returns true if err represents an unsupported content type.
func IsUnsupportedMediaType(err error) bool {
	var e unsupportedMediaType
	return errors.As(err, &e)
}
