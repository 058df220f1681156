package net

import (
	"net/http"

	perr "gadash/internal/platform/errors"
)

// Envelope is the body of every API response
// error and code are only present on failures
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
	Code      string `json:"code,omitempty"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Envelope) {
	return http.StatusOK, Envelope{Success: true, Data: data, RequestID: reqID}
}

// Error builds a failure envelope with the status mapped from the error code
func Error(err error, reqID string) (int, Envelope) {
	if err == nil {
		return OK(nil, reqID)
	}
	w := perr.WireFrom(err)
	msg := w.Message
	if msg == "" {
		msg = err.Error()
	}
	return perr.HTTPStatus(err), Envelope{
		Error:     msg,
		Code:      w.Code.String(),
		Field:     w.Field,
		RequestID: reqID,
	}
}
