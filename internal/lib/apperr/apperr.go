// Package apperr defines the domain error taxonomy shared by services and the HTTP layer.
package apperr

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Error is a domain error carrying a human readable message.
// It unwraps to its kind, so callers can match with errors.Is(err, apperr.ErrNotFound).
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Validation reports malformed or missing input.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// Conflict reports a uniqueness violation.
func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

// NotFound reports that a referenced entity does not exist.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Message returns the client facing message of a domain error and whether err is one.
func Message(err error) (string, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message, true
	}
	return "", false
}
