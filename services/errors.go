package services

import (
	"errors"
	"net/http"
)

// Error kinds. Match them with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

var statusByKind = map[error]int{
	ErrValidation:   http.StatusBadRequest,
	ErrUnauthorized: http.StatusUnauthorized,
	ErrForbidden:    http.StatusForbidden,
	ErrNotFound:     http.StatusNotFound,
	ErrConflict:     http.StatusConflict,
	ErrInternal:     http.StatusInternalServerError,
}

// Error is a typed failure carrying the client-facing message. Errors holds
// per-field details for validation failures; Err is the underlying cause and
// never reaches the client.
type Error struct {
	Kind    error
	Message string
	Errors  []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

// StatusCode returns the HTTP status for the error kind.
func (e *Error) StatusCode() int {
	if code, ok := statusByKind[e.Kind]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// StatusCode maps any error to an HTTP status. Untyped errors are 500.
func StatusCode(err error) int {
	var se *Error
	if errors.As(err, &se) {
		return se.StatusCode()
	}
	return http.StatusInternalServerError
}

func NewValidationError(message string, details ...string) *Error {
	return &Error{Kind: ErrValidation, Message: message, Errors: details}
}

func NewUnauthorizedError(message string, cause error) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message, Err: cause}
}

func NewForbiddenError(message string) *Error {
	return &Error{Kind: ErrForbidden, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Kind: ErrConflict, Message: message}
}

func NewInternalError(message string, cause error) *Error {
	return &Error{Kind: ErrInternal, Message: message, Err: cause}
}
