// Package errors carries the coded error type shared by handlers, report
// backends and the CLI. Import it as perr.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for callers; the name is what reaches the wire
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	// ErrorCodeUnavailable means a retry may succeed
	ErrorCodeUnavailable
	ErrorCodeTooManyRequests
	ErrorCodeUnauthorized
	ErrorCodeForbidden
	// ErrorCodeInvalidArgument is well formed input the backend refused
	ErrorCodeInvalidArgument
	// ErrorCodeValidation is input rejected before any backend call
	ErrorCodeValidation
	ErrorCodeJSON
	ErrorCodeNotFound
	ErrorCodeDB
	// ErrorCodeBadGateway is an upstream failure the dashboard user cannot
	// fix, such as the reporting API rejecting our credentials
	ErrorCodeBadGateway
)

type codeInfo struct {
	name   string
	status int
}

var codes = [...]codeInfo{
	ErrorCodeUnknown:         {"UNKNOWN", http.StatusInternalServerError},
	ErrorCodePanic:           {"PANIC", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"UNAVAILABLE", http.StatusServiceUnavailable},
	ErrorCodeTooManyRequests: {"TOO_MANY_REQUESTS", http.StatusTooManyRequests},
	ErrorCodeUnauthorized:    {"UNAUTHORIZED", http.StatusUnauthorized},
	ErrorCodeForbidden:       {"FORBIDDEN", http.StatusForbidden},
	ErrorCodeInvalidArgument: {"INVALID_ARGUMENT", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"VALIDATION", http.StatusBadRequest},
	ErrorCodeJSON:            {"JSON", http.StatusBadRequest},
	ErrorCodeNotFound:        {"NOT_FOUND", http.StatusNotFound},
	ErrorCodeDB:              {"DB", http.StatusInternalServerError},
	ErrorCodeBadGateway:      {"BAD_GATEWAY", http.StatusBadGateway},
}

func (c ErrorCode) info() codeInfo {
	if int(c) < len(codes) {
		return codes[c]
	}
	return codes[ErrorCodeUnknown]
}

// String returns the wire name, UNKNOWN for codes outside the table
func (c ErrorCode) String() string { return c.info().name }

// HTTPStatusCode maps a code to the response status
func HTTPStatusCode(c ErrorCode) int { return c.info().status }

// ErrNotFound is returned by single row lookups that matched nothing
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error is a coded error. msg is for people, code is for programs.
type Error struct {
	code  ErrorCode
	msg   string
	field string
	op    string
	orig  error
}

// Wire is the client facing view of an error
type Wire struct {
	Code    ErrorCode
	Message string
	Field   string
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.orig == nil:
		return e.msg
	}
	return e.msg + ": " + e.orig.Error()
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the classification
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input, if any
func (e *Error) Field() string { return e.field }

// Op names the operation that failed, if set
func (e *Error) Op() string { return e.op }

// WireFrom flattens any error for a response body; foreign errors are UNKNOWN
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root walks the Unwrap chain to the innermost cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// As finds the first *Error in the chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns the code of the first *Error in the chain, or Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether CodeOf(err) == code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is HTTPStatusCode(CodeOf(err))
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WithField returns a copy of the *Error in err tagged with field.
// Foreign errors come back unchanged.
func WithField(err error, field string) error {
	return edit(err, func(c *Error) { c.field = field })
}

// WithOp returns a copy of the *Error in err tagged with op
func WithOp(err error, op string) error {
	return edit(err, func(c *Error) { c.op = op })
}

func edit(err error, fn func(*Error)) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	fn(&c)
	return &c
}

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Newf(code ErrorCode, format string, a ...any) error {
	return New(code, fmt.Sprintf(format, a...))
}

// Wrap attaches a code and message to orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return Wrap(orig, code, fmt.Sprintf(format, a...))
}

func NotFoundf(format string, a ...any) error     { return Newf(ErrorCodeNotFound, format, a...) }
func InvalidArgf(format string, a ...any) error   { return Newf(ErrorCodeInvalidArgument, format, a...) }
func JSONErrf(format string, a ...any) error      { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error     { return Newf(ErrorCodePanic, format, a...) }
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }
func Forbiddenf(format string, a ...any) error    { return Newf(ErrorCodeForbidden, format, a...) }
func TooManyRequestsf(format string, a ...any) error {
	return Newf(ErrorCodeTooManyRequests, format, a...)
}
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// Internalf is for invariant failures inside the service
func Internalf(format string, a ...any) error { return Newf(ErrorCodeUnknown, format, a...) }
