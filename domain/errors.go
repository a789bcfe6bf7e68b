package domain

import "errors"

// Error kinds. Every sentinel in this package wraps exactly one of them so
// the presentation layer can pick a status code with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidState    = errors.New("invalid state")
	ErrUpstream        = errors.New("upstream failure")
)

type kindError struct {
	kind error
	msg  string
}

func (e kindError) Error() string { return e.msg }

func (e kindError) Unwrap() error { return e.kind }

func NewError(kind error, msg string) error {
	return kindError{kind: kind, msg: msg}
}

// InsufficientBalanceError carries the balance a chef can still withdraw.
type InsufficientBalanceError struct {
	Available float64
}

func (e *InsufficientBalanceError) Error() string {
	return "insufficient balance"
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInvalidState
}
