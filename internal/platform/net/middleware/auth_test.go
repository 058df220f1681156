package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perr "gadash/internal/platform/errors"
	pnet "gadash/internal/platform/net"
	phttp "gadash/internal/platform/net/http"
	"gadash/internal/platform/net/middleware"
)

type fakeAuthPort struct {
	sub string
	err error
}

func (f fakeAuthPort) Parse(*http.Request) (string, error) { return f.sub, f.err }

func TestAuth_NilPortPassesThrough(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(200)
	})

	rr := httptest.NewRecorder()
	middleware.Auth(nil, phttp.JSON)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if !nextCalled || rr.Code != 200 {
		t.Fatalf("expected pass through, called=%v code=%d", nextCalled, rr.Code)
	}
}

func TestAuth_ErrorWritesEnvelope(t *testing.T) {
	p := fakeAuthPort{err: perr.Unauthorizedf("invalid bearer token")}

	var nextCalled bool
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

	rr := httptest.NewRecorder()
	middleware.Auth(p, phttp.JSON)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if nextCalled {
		t.Fatal("did not expect next to be called on auth error")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rr.Code)
	}
	if body := rr.Body.String(); body == "" || body[0] != '{' {
		t.Fatalf("expected json envelope, got %q", body)
	}
}

func TestAuth_SetsSubjectOnContext(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.Subject(r.Context())
	})

	rr := httptest.NewRecorder()
	middleware.Auth(fakeAuthPort{sub: "session-1"}, phttp.JSON)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen != "session-1" {
		t.Fatalf("expected subject session-1 got %q", seen)
	}
}
