package pg

import (
	"context"
	"errors"
	"testing"
	"time"

	"gadash/internal/platform/testkit"

	"github.com/jackc/pgx/v5/pgxpool"
)

func TestOpen_ParseError(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{URL: "://bad"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOpen_NewPoolError(t *testing.T) {
	testkit.Serial(t)
	testkit.Swap(t, &newPool, func(context.Context, *pgxpool.Config) (*pgxpool.Pool, error) {
		return nil, errors.New("boom")
	})

	if _, err := Open(context.Background(), Config{URL: "postgres://u:p@h:5432/db"}); err == nil {
		t.Fatal("expected newPool error")
	}
}

func TestOpen_AppliesSessionParams(t *testing.T) {
	testkit.Serial(t)

	var seen *pgxpool.Config
	testkit.Swap(t, &newPool, func(_ context.Context, c *pgxpool.Config) (*pgxpool.Pool, error) {
		seen = c
		return &pgxpool.Pool{}, nil
	})

	cfg := Config{
		URL:      "postgres://u:p@h:5432/db?sslmode=disable",
		MaxConns: 7,
		AppName:  "gadash-api",
		ReadOnly: true,
		Slow:     250 * time.Millisecond,
	}
	p, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if seen.MaxConns != 7 || p.slow != 250*time.Millisecond {
		t.Fatalf("pool config not applied: max=%d slow=%v", seen.MaxConns, p.slow)
	}
	params := seen.ConnConfig.RuntimeParams
	if params["application_name"] != "gadash-api" || params["default_transaction_read_only"] != "on" {
		t.Fatalf("runtime params = %v", params)
	}
}

func TestClose_NilSafe(t *testing.T) {
	t.Parallel()

	var p *PG
	p.Close()
	(&PG{}).Close()
}
