package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized collapses every authentication failure. Callers must not
// learn which check failed.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when the caller does not own the resource.
var ErrForbidden = errors.New("forbidden")

// ErrPasswordReused is returned when the new password matches the current one.
var ErrPasswordReused = errors.New("cannot reuse old password")

// ErrDeliveryFailed is returned when the notification could not be sent.
// The action may be retried.
var ErrDeliveryFailed = errors.New("failed to deliver notification")

var (
	ErrLoginTaken            = errors.New("login already exists")
	ErrEmailTaken            = errors.New("email already exists")
	ErrEmailNotExist         = errors.New("email is not exist")
	ErrEmailAlreadyConfirmed = errors.New("email is already confirmed")
	ErrCodeInvalid           = errors.New("code is not valid")
	ErrCodeAlreadyApplied    = errors.New("code is already applied")
	ErrCodeExpired           = errors.New("code is expired")
)

// ValidationError ties a rejected value to the request field it came from.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
