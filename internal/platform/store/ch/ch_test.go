package ch

import (
	"context"
	"testing"
)

func TestOpen_ParsesDSN(t *testing.T) {
	t.Parallel()

	cl, err := Open(context.Background(), Config{URL: "clickhouse://default:@127.0.0.1:9000/analytics", AppName: "gadash-test"})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if cl == nil {
		t.Fatal("Open returned nil client")
	}
	_ = cl.Close()
}

func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{URL: "clickhouse://[::1"}); err == nil {
		t.Fatal("expected DSN parse error")
	}
}

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	ci := BuildClientInfo(" ", "report")
	if len(ci.Products) != 4 {
		t.Fatalf("products = %d", len(ci.Products))
	}
	if ci.Products[0].Name != "gadash" {
		t.Fatalf("default app name = %q", ci.Products[0].Name)
	}
	if ci.Products[1].Version != "report" {
		t.Fatalf("role = %q", ci.Products[1].Version)
	}
}
