//go:build integration_pg
// +build integration_pg

package pg

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, port.Port())
}

func TestOpen_ReadOnlySession_Integration(t *testing.T) {
	dsn := startPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	p, err := Open(ctx, Config{URL: dsn, AppName: "gadash-pg-integration", ReadOnly: true})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(p.Close)

	var app string
	if err := p.Pool.QueryRow(ctx, `select current_setting('application_name')`).Scan(&app); err != nil {
		t.Fatalf("app name: %v", err)
	}
	if app != "gadash-pg-integration" {
		t.Fatalf("application_name = %q", app)
	}

	if _, err := p.Pool.Exec(ctx, `create table nope (id int)`); err == nil {
		t.Fatal("write succeeded on a read only session")
	}
}

type recordTracer struct{ events []QueryEvent }

func (r *recordTracer) OnQuery(_ context.Context, ev QueryEvent) { r.events = append(r.events, ev) }

func TestQuery_Traced_Integration(t *testing.T) {
	dsn := startPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	rec := &recordTracer{}
	p, err := Open(ctx, Config{URL: dsn, Tracer: rec, Slow: time.Nanosecond})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(p.Close)

	rows, err := p.Query(ctx, `select $1::text`, "organic")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	rows.Close()
	if _, err := p.Query(ctx, `select nope from nowhere`); err == nil {
		t.Fatal("bad query succeeded")
	}

	if len(rec.events) != 2 {
		t.Fatalf("events = %d", len(rec.events))
	}
	if !rec.events[0].Slow || rec.events[0].Err != nil {
		t.Fatalf("first event = %+v", rec.events[0])
	}
	if rec.events[1].Err == nil {
		t.Fatalf("failed query traced without error")
	}
}
