package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gadash/internal/core/report"
	pnet "gadash/internal/platform/net"
	phttp "gadash/internal/platform/net/http"
)

func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid, ""))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return m
}

func TestRespondOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	phttp.RespondOK(rec, reqWithReqID("GET", "/x", "rid-1"), map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("code %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type %q", ct)
	}
	m := decode(t, rec)
	if m["success"] != true || m["requestId"] != "rid-1" || m["data"] == nil {
		t.Fatalf("bad envelope %v", m)
	}
	if _, ok := m["error"]; ok {
		t.Fatalf("success envelope carries error: %v", m)
	}
}

func TestRespondError_UpstreamAuthIsBadGateway(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := report.NewError(report.KindAuth, "overview", errors.New("invalid credentials"))
	phttp.RespondError(rec, reqWithReqID("GET", "/x", "rid-2"), err)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("code %d want 502", rec.Code)
	}
	m := decode(t, rec)
	if m["success"] != false || m["code"] != "BAD_GATEWAY" || m["error"] == "" {
		t.Fatalf("bad envelope %v", m)
	}
}

func TestHandleResponses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		resp phttp.Response
		code int
	}{
		{"ok", phttp.OK(1), http.StatusOK},
		{"no content", phttp.NoContent(), http.StatusNoContent},
		{"error", phttp.Error(report.NewError(report.KindQuota, "q", nil)), http.StatusTooManyRequests},
		{"zero status", phttp.Response{Body: "x"}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			phttp.Handle(func(*http.Request) phttp.Response { return tc.resp })(rec, httptest.NewRequest("GET", "/", nil))
			if rec.Code != tc.code {
				t.Fatalf("code %d want %d", rec.Code, tc.code)
			}
			if tc.code == http.StatusNoContent && rec.Body.Len() != 0 {
				t.Fatalf("204 should have no body")
			}
		})
	}
}

func TestHandleHeaders(t *testing.T) {
	t.Parallel()

	h := phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.Response{Status: http.StatusOK, Body: "x", Header: http.Header{"X-Test": {"1"}}}
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Header().Get("X-Test") != "1" {
		t.Fatalf("header not copied")
	}
}
