// Package apperrors defines the error taxonomy shared by services and the
// HTTP layer. Services create errors with New/Newf; handlers map the kind to
// a status code with HTTPStatus and expose Message in the JSON envelope.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a sentinel error category matched with errors.Is.
type Kind struct{ name string }

func (k *Kind) Error() string { return k.name }

var (
	ErrValidation = &Kind{"validation failed"}
	ErrAuth       = &Kind{"authentication failed"}
	ErrForbidden  = &Kind{"forbidden"}
	ErrNotFound   = &Kind{"not found"}
	ErrConflict   = &Kind{"conflict"}
	ErrInternal   = &Kind{"internal error"}
)

type appError struct {
	kind *Kind
	msg  string
}

func (e *appError) Error() string { return e.msg }
func (e *appError) Unwrap() error { return e.kind }

// New builds an error of the given kind carrying a caller-facing message.
func New(kind *Kind, msg string) error {
	return &appError{kind: kind, msg: msg}
}

// Newf is New with formatting.
func Newf(kind *Kind, format string, args ...any) error {
	return &appError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error, keeping the cause for logs.
func Wrap(kind *Kind, msg string, cause error) error {
	return &appError{kind: kind, msg: msg + ": " + cause.Error()}
}

// HTTPStatus maps an error to its response code. Unrecognized errors are
// treated as internal failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message extracts the caller-facing text of an error. Internal errors are
// masked so store details never leak into responses.
func Message(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
