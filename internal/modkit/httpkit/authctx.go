package httpkit

import (
	"net/http"
	"strings"

	perrs "gadash/internal/platform/errors"
	pnet "gadash/internal/platform/net"
)

// Subject returns the authenticated session subject from the request context
func Subject(r *http.Request) (string, error) {
	sub := pnet.Subject(r.Context())
	if sub == "" {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return sub, nil
}

// Bearer returns the raw bearer token from the Authorization header
// the scheme match is case-insensitive
func Bearer(r *http.Request) (string, error) {
	s := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "bearer"
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	rest := s[len(prefix):]
	raw := strings.TrimSpace(rest)
	// "Bearertoken" is not a bearer header
	if raw == "" || rest[0] != ' ' {
		return "", perrs.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
