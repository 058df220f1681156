package errors

import "net/http"

// FromHTTPStatus classifies a non-2xx status returned by an upstream API
// credential failures become BadGateway so they never read as a dashboard logout
func FromHTTPStatus(status int, msg string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return New(ErrorCodeBadGateway, msg)
	case status == http.StatusTooManyRequests:
		return New(ErrorCodeTooManyRequests, msg)
	case status == http.StatusNotFound:
		return New(ErrorCodeNotFound, msg)
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return New(ErrorCodeInvalidArgument, msg)
	case status >= 500:
		return New(ErrorCodeUnavailable, msg)
	}
	return New(ErrorCodeUnknown, msg)
}
