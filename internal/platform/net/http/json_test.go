package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "gadash/internal/platform/errors"
	pnet "gadash/internal/platform/net"
)

type codeIn struct {
	Code string `json:"code" validate:"required,len=4"`
}

type rangeIn struct {
	Start string `query:"startDate"`
	Limit int    `query:"limit" validate:"omitempty,max=50"`
}

func serve(h Handler, method, target, body string) (*httptest.ResponseRecorder, pnet.Envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	var env pnet.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestJSONHandler(t *testing.T) {
	t.Parallel()

	h := JSONHandler(func(_ *http.Request, in codeIn) (any, error) {
		if in.Code == "0000" {
			return nil, perr.Unauthorizedf("invalid access code")
		}
		return map[string]string{"echo": in.Code}, nil
	})

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"ok", `{"code":"2468"}`, http.StatusOK, ""},
		{"bad json", `{`, http.StatusBadRequest, "JSON"},
		{"validation", `{"code":"1"}`, http.StatusBadRequest, "VALIDATION"},
		{"handler error", `{"code":"0000"}`, http.StatusUnauthorized, "UNAUTHORIZED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec, env := serve(h, http.MethodPost, "/login", tc.body)
			if rec.Code != tc.status || env.Code != tc.code {
				t.Fatalf("got %d %q, want %d %q: %s", rec.Code, env.Code, tc.status, tc.code, rec.Body.String())
			}
			if tc.status == http.StatusOK && !env.Success {
				t.Fatalf("success envelope expected: %s", rec.Body.String())
			}
		})
	}
}

func TestQueryHandler(t *testing.T) {
	t.Parallel()

	h := QueryHandler(func(_ *http.Request, in rangeIn) (any, error) { return in, nil })

	rec, env := serve(h, http.MethodGet, "/top-pages?startDate=7daysAgo&limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := env.Data.(map[string]any)
	if data["Start"] != "7daysAgo" || data["Limit"] != float64(5) {
		t.Fatalf("data = %v", env.Data)
	}

	rec, env = serve(h, http.MethodGet, "/top-pages?limit=51", "")
	if rec.Code != http.StatusBadRequest || env.Field != "limit" {
		t.Fatalf("limit=51 = %d field %q", rec.Code, env.Field)
	}
}

func TestJSONHandlerNoBody(t *testing.T) {
	t.Parallel()

	h := JSONHandlerNoBody(func(*http.Request) (any, error) { return nil, errors.New("ga unreachable") })
	rec, env := serve(h, http.MethodGet, "/", "")
	if rec.Code != http.StatusInternalServerError || !strings.Contains(env.Error, "ga unreachable") {
		t.Fatalf("got %d %+v", rec.Code, env)
	}
}
