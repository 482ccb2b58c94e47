// Package apperr provides an error type whose message can be formatted at the
// point of use while remaining comparable with errors.Is
package apperr

import "fmt"

// Error is a sentinel error with an optional printf-style message.
type Error struct {
	Cause   error
	base    *Error
	Message string
	Context []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf(e.Message, e.Context...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Fmt returns a copy of the error with its message formatted using the
// provided arguments.
func (e *Error) Fmt(a ...any) *Error {
	return &Error{
		base:    e.root(),
		Message: e.Message,
		Context: a,
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error that wraps the cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		base:    e.root(),
		Message: e.Message,
		Context: e.Context,
		Cause:   err,
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel this error was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
