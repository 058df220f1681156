package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gadash/internal/platform/config"
	phttp "gadash/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func header(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-MW", name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChiAdapter_RouteGroupWith(t *testing.T) {
	t.Parallel()

	r := phttp.AdaptChi(chi.NewRouter())
	r.Use(header("root"))
	r.Route("/api", func(api phttp.Router) {
		api.Group(func(g phttp.Router) {
			g.Use(header("group"))
			g.Get("/a", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "a") })
		})
		api.With(header("with")).Post("/b", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
		api.Handle("/c", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) }))
	})

	cases := []struct {
		method, path string
		code         int
		mw           []string
	}{
		{"GET", "/api/a", http.StatusOK, []string{"root", "group"}},
		{"POST", "/api/b", http.StatusCreated, []string{"root", "with"}},
		{"GET", "/api/c", http.StatusAccepted, []string{"root"}},
		{"POST", "/api/a", http.StatusMethodNotAllowed, []string{"root"}},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.code {
			t.Fatalf("%s %s: code %d want %d", tc.method, tc.path, rec.Code, tc.code)
		}
		got := rec.Header().Values("X-MW")
		if tc.code < 400 && len(got) != len(tc.mw) {
			t.Fatalf("%s %s: middlewares %v want %v", tc.method, tc.path, got, tc.mw)
		}
	}
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := phttp.NewServer(config.New().Prefix("TEST_UNSET_"))
	if srv.Addr() != ":4000" {
		t.Fatalf("default addr %q", srv.Addr())
	}
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(b) != "pong" {
		t.Fatalf("body %q", b)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
