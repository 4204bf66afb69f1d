package structs

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidSession  = errors.New("invalid session")
	ErrAuthRequired    = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrBusy            = errors.New("operation already in progress")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrUnknownStatus   = errors.New("unknown order status")
	ErrRemote          = errors.New("remote service error")
)

// ValidationError names the missing or malformed field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// RemoteError is any non-2xx answer from one of the remote services.
// Message is the service "error" field, or the caller's fallback text.
type RemoteError struct {
	Service string
	Op      string
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Service, e.Op, e.Status, e.Message)
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// Message returns the user-facing text for err.
func Message(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	var invalid *ValidationError
	if errors.As(err, &invalid) {
		return invalid.Message
	}
	return err.Error()
}
