package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	kit "gadash/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zerolog.Level{
		"trace":     zerolog.TraceLevel,
		"DEBUG":     zerolog.DebugLevel,
		"info":      zerolog.InfoLevel,
		"warn":      zerolog.WarnLevel,
		" warning ": zerolog.WarnLevel,
		"error":     zerolog.ErrorLevel,
		"":          zerolog.InfoLevel,
		"loud":      zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBuildStaticFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := build(Options{
		Level:     "debug",
		Format:    "json",
		Writer:    &buf,
		Service:   "gadash-api",
		Component: "ga",
		Fields:    map[string]string{"backend": "ga"},
	})
	l.Debug().Msg("report query")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("json line: %v\n%s", err, buf.String())
	}
	for k, want := range map[string]string{"service": "gadash-api", "component": "ga", "backend": "ga", "message": "report query"} {
		if line[k] != want {
			t.Fatalf("%s = %v, want %s", k, line[k], want)
		}
	}
}

func TestBuildConsoleAndLevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := build(Options{Level: "warn", Writer: &buf})
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	out := buf.String()
	kit.MustContain(t, out, "kept")
	if bytes.Contains(buf.Bytes(), []byte("dropped")) {
		t.Fatalf("info line passed a warn logger: %s", out)
	}
}

func TestCUsesContextLoggerAndRequestFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithContext(context.Background(), &base)
	ctx = WithRequest(ctx, "req-123", "admin")
	C(ctx).Info().Msg("dashboard login")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("json line: %v", err)
	}
	if line["request_id"] != "req-123" || line["subject"] != "admin" {
		t.Fatalf("line = %v", line)
	}
}

func TestCWithoutValuesFallsBackToRoot(t *testing.T) {
	t.Parallel()

	if C(context.Background()) == nil || Named("http") == nil || Named("") != Get() {
		t.Fatalf("root fallbacks broken")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "")
	t.Setenv("LOG_COMPONENT", "report")
	t.Setenv("LOG_CALLER", "true")
	t.Setenv("LOG_SAMPLE_EVERY", "5")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Component != "report" {
		t.Fatalf("FromEnv = %+v", opt)
	}
	if opt.Service != "gadash" {
		t.Fatalf("default service = %q, want gadash", opt.Service)
	}
	if !opt.WithCaller || opt.SampleEvery != 5 {
		t.Fatalf("FromEnv caller/sample = %+v", opt)
	}
}
