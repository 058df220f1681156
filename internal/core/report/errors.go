package report

import (
	stderrs "errors"
	"fmt"

	perr "gadash/internal/platform/errors"
)

// Kind classifies a failed report query
type Kind uint8

const (
	// KindUnknown is anything we could not classify, treated as fatal
	KindUnknown Kind = iota
	// KindAuth means credentials were rejected or the client was never initialized
	KindAuth
	// KindQuota means the upstream rate limit or quota was exhausted
	KindQuota
	// KindUnsupported means a dimension, metric or filter is not available on this property
	KindUnsupported
	// KindTransient means a 5xx or network failure
	KindTransient
	// KindInvalid means the request was malformed before it left the process
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindQuota:
		return "quota"
	case KindUnsupported:
		return "unsupported"
	case KindTransient:
		return "transient"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// code maps a kind onto the platform error codes used for HTTP status mapping
func (k Kind) code() perr.ErrorCode {
	switch k {
	case KindAuth:
		return perr.ErrorCodeBadGateway
	case KindQuota:
		return perr.ErrorCodeTooManyRequests
	case KindUnsupported:
		return perr.ErrorCodeInvalidArgument
	case KindTransient:
		return perr.ErrorCodeUnavailable
	case KindInvalid:
		return perr.ErrorCodeValidation
	default:
		return perr.ErrorCodeUnknown
	}
}

// QueryError is returned by every Client implementation on failure
type QueryError struct {
	Kind  Kind
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("report %s: %v", e.Query, e.Err)
	}
	return fmt.Sprintf("report: %v", e.Err)
}

// Unwrap exposes a platform error carrying the kind's code ahead of the cause,
// so perr.CodeOf and perr.HTTPStatus agree with Kind while errors.Is still sees the cause
func (e *QueryError) Unwrap() []error {
	return []error{perr.New(e.Kind.code(), e.Error()), e.Err}
}

// NewError builds a QueryError
func NewError(kind Kind, query string, cause error) *QueryError {
	if cause == nil {
		cause = stderrs.New(kind.String() + " failure")
	}
	return &QueryError{Kind: kind, Query: query, Err: cause}
}

// ErrNotInitialized is returned when no reporting backend was configured
var ErrNotInitialized = NewError(KindAuth, "", stderrs.New("analytics client not initialized"))

// KindOf classifies any error, looking through wrapping
// errors that are not QueryErrors are classified by their platform code
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var qe *QueryError
	if stderrs.As(err, &qe) {
		return qe.Kind
	}
	switch perr.CodeOf(err) {
	case perr.ErrorCodeBadGateway, perr.ErrorCodeUnauthorized:
		return KindAuth
	case perr.ErrorCodeTooManyRequests:
		return KindQuota
	case perr.ErrorCodeInvalidArgument:
		return KindUnsupported
	case perr.ErrorCodeUnavailable:
		return KindTransient
	case perr.ErrorCodeValidation:
		return KindInvalid
	}
	return KindUnknown
}

// IsUnsupported reports whether err is a soft unsupported-query failure
func IsUnsupported(err error) bool { return err != nil && KindOf(err) == KindUnsupported }

// IsAuth reports whether err is an authentication failure
func IsAuth(err error) bool { return err != nil && KindOf(err) == KindAuth }
