package apperrors

import (
	"errors"
	"strings"
)

// appError is the concrete implementation behind the Error interface.
type appError struct {
	msg         string  // primary error message
	base        error   // template error, preserved for errors.Is chains
	wrapped     []error // additional wrapped errors
	statuscode  int     // HTTP status code
	expandError bool    // include wrapped errors in ErrorAll output
}

func (e *appError) Error() string {
	return e.msg
}

// ErrorAll returns the message joined with all wrapped errors when
// expansion is enabled, otherwise just the primary message.
func (e *appError) ErrorAll() string {
	if !e.expandError {
		return e.msg
	}
	var b strings.Builder
	b.WriteString(e.msg)
	for _, err := range e.wrapped {
		b.WriteString("; ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *appError) Unwrap() error {
	return e.base
}

func (e *appError) UnwrapAll() []error {
	return e.wrapped
}

// New derives a fresh error from the current one. The derived error keeps
// the status code and matches the original via errors.Is, but carries no
// wrapped errors of its own.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		statuscode: e.statuscode,
	}
}

// Msg derives an error with a new message that wraps the original.
func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:        msg,
		base:       e,
		wrapped:    append([]error{e}, e.wrapped...),
		statuscode: e.statuscode,
	}
}

// MsgErr derives an error with a new message wrapping the original plus
// any additional errors.
func (e *appError) MsgErr(msg string, errs ...error) Error {
	return &appError{
		msg:        msg,
		base:       e,
		wrapped:    append([]error{e}, errs...),
		statuscode: e.statuscode,
	}
}

// Err attaches additional errors while keeping the current message.
func (e *appError) Err(errs ...error) Error {
	return &appError{
		msg:        e.msg,
		base:       e,
		wrapped:    append([]error{e}, errs...),
		statuscode: e.statuscode,
	}
}

// SetExpandError returns a copy with the expansion flag updated.
func (e *appError) SetExpandError(flag bool) Error {
	cp := *e
	cp.expandError = flag
	return &cp
}

// SetStatusCode returns a copy with the status code updated.
func (e *appError) SetStatusCode(code int) Error {
	cp := *e
	cp.statuscode = code
	return &cp
}

func (e *appError) StatusCode() int {
	return e.statuscode
}

// Is reports whether target matches this error, its template chain, or any
// wrapped error.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, err := range e.wrapped {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// New creates a root-level error with the given message.
func New(msg string) Error {
	return &appError{
		msg: msg,
	}
}
