package repo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	perrs "gadash/internal/platform/errors"
	"gadash/internal/platform/testkit"

	"github.com/redis/go-redis/v9"
)

func TestMemory_Expiry(t *testing.T) {
	t.Parallel()

	clock := testkit.NewClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewMemory()
	s.now = clock.Now
	ctx := context.Background()

	if err := s.Put(ctx, "tok", "admin", time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}
	if sub, err := s.Get(ctx, "tok"); err != nil || sub != "admin" {
		t.Fatalf("get = %q, %v", sub, err)
	}

	clock.Advance(time.Hour)
	if _, err := s.Get(ctx, "tok"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("want expired session, got %v", err)
	}
	if len(s.m) != 0 {
		t.Fatal("expired entry should be dropped on read")
	}
}

func TestMemory_PutSweepsExpired(t *testing.T) {
	t.Parallel()

	clock := testkit.NewClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewMemory()
	s.now = clock.Now
	ctx := context.Background()

	_ = s.Put(ctx, "old-1", "admin", time.Minute)
	_ = s.Put(ctx, "old-2", "admin", time.Minute)
	_ = s.Put(ctx, "live", "admin", time.Hour)
	clock.Advance(2 * time.Minute)

	if err := s.Put(ctx, "new", "admin", time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}
	if len(s.m) != 2 {
		t.Fatalf("entries = %d, want the live and new sessions only", len(s.m))
	}
	for _, tok := range []string{"live", "new"} {
		if _, err := s.Get(ctx, tok); err != nil {
			t.Fatalf("get %s: %v", tok, err)
		}
	}
}

func TestMemory_Delete(t *testing.T) {
	t.Parallel()

	s := NewMemory()
	ctx := context.Background()
	_ = s.Put(ctx, "tok", "admin", time.Hour)
	if err := s.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "missing"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	if _, err := s.Get(ctx, "tok"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("want no session, got %v", err)
	}
}

type fakeRedis struct {
	mu   sync.Mutex
	kv   map[string]string
	ttls map[string]time.Duration
	fail error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{kv: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return redis.NewStatusResult("", f.fail)
	}
	f.kv[key] = value.(string)
	f.ttls[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return redis.NewStringResult("", f.fail)
	}
	v, ok := f.kv[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.kv[k]; ok {
			delete(f.kv, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedis_RoundTrip(t *testing.T) {
	t.Parallel()

	fr := newFakeRedis()
	s := &Redis{c: fr}
	ctx := context.Background()

	if err := s.Put(ctx, "tok", "admin", 24*time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}
	if fr.kv[KeyPrefix+"tok"] != "admin" || fr.ttls[KeyPrefix+"tok"] != 24*time.Hour {
		t.Fatalf("unexpected redis state %v %v", fr.kv, fr.ttls)
	}
	if sub, err := s.Get(ctx, "tok"); err != nil || sub != "admin" {
		t.Fatalf("get = %q, %v", sub, err)
	}
	if err := s.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "tok"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("want no session, got %v", err)
	}
}

func TestRedis_BackendErrors(t *testing.T) {
	t.Parallel()

	fr := newFakeRedis()
	fr.fail = errors.New("connection refused")
	s := &Redis{c: fr}

	_, err := s.Get(context.Background(), "tok")
	if errors.Is(err, ErrNoSession) || perrs.CodeOf(err) != perrs.ErrorCodeUnavailable {
		t.Fatalf("want unavailable, got %v", err)
	}
	if err := s.Put(context.Background(), "tok", "admin", time.Minute); perrs.CodeOf(err) != perrs.ErrorCodeUnavailable {
		t.Fatalf("want unavailable, got %v", err)
	}
}
