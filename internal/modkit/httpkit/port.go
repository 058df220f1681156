package httpkit

import (
	"net/http"

	perrs "gadash/internal/platform/errors"
)

// TokenFunc resolves a bearer token to its session subject
type TokenFunc func(r *http.Request, token string) (subject string, err error)

// Port implements middleware.AuthPort by reading Authorization and delegating to a TokenFunc
type Port struct {
	resolve TokenFunc
}

// NewPortFunc builds a Port from a resolver function
func NewPortFunc(fn TokenFunc) *Port {
	return &Port{resolve: fn}
}

// Parse extracts the session subject from the Authorization bearer token
// any resolver error is reported as an invalid token so callers cannot probe the store
func (p *Port) Parse(r *http.Request) (string, error) {
	raw, err := Bearer(r)
	if err != nil {
		return "", err
	}
	if p == nil || p.resolve == nil {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	sub, err := p.resolve(r, raw)
	if err != nil || sub == "" {
		return "", perrs.Unauthorizedf("invalid bearer token")
	}
	return sub, nil
}
