// path: apperr/apperr.go

// Package apperr carries the request-level error taxonomy. Controllers
// map these to HTTP status codes with errors.As; everything else just
// returns them up the stack.
package apperr

import "fmt"

// ValidationError: a required field is missing or malformed (400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError: a referenced file or report id does not exist (404).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NotFoundf(format string, args ...any) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError: the write collides with an existing record, e.g. a
// duplicate user registration (400).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}
