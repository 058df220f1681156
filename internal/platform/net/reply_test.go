package net_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"gadash/internal/core/report"
	perr "gadash/internal/platform/errors"
	pnet "gadash/internal/platform/net"
)

func TestOK(t *testing.T) {
	t.Parallel()

	status, env := pnet.OK(map[string]int{"x": 1}, "req-1")
	if status != http.StatusOK || !env.Success || env.RequestID != "req-1" {
		t.Fatalf("unexpected envelope %d %+v", status, env)
	}

	b, _ := json.Marshal(env)
	if strings.Contains(string(b), `"error"`) || strings.Contains(string(b), `"code"`) {
		t.Fatalf("success body should omit error and code: %s", b)
	}
	if !strings.Contains(string(b), `"requestId":"req-1"`) {
		t.Fatalf("missing requestId: %s", b)
	}
}

func TestError_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", perr.Newf(perr.ErrorCodeValidation, "limit must be at most 500"), 400, "VALIDATION"},
		{"unauthorized", perr.Unauthorizedf("invalid bearer token"), 401, "UNAUTHORIZED"},
		{"upstream auth", report.NewError(report.KindAuth, "audience.geo", errors.New("401")), 502, "BAD_GATEWAY"},
		{"quota", report.NewError(report.KindQuota, "q", errors.New("429")), 429, "TOO_MANY_REQUESTS"},
		{"transient", report.NewError(report.KindTransient, "q", errors.New("503")), 503, "UNAVAILABLE"},
		{"plain", errors.New("boom"), 500, "UNKNOWN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status, env := pnet.Error(tc.err, "rid")
			if status != tc.status {
				t.Fatalf("status %d want %d", status, tc.status)
			}
			if env.Success || env.Code != tc.code || env.Error == "" || env.RequestID != "rid" {
				t.Fatalf("unexpected envelope %+v", env)
			}
		})
	}
}

func TestError_NilIsOK(t *testing.T) {
	t.Parallel()

	status, env := pnet.Error(nil, "r")
	if status != http.StatusOK || !env.Success {
		t.Fatalf("nil error should be OK, got %d %+v", status, env)
	}
}
