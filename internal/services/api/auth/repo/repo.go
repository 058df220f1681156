// Package repo stores dashboard login sessions
package repo

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	perrs "gadash/internal/platform/errors"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces session keys in redis
const KeyPrefix = "gadash:session:"

// ErrNoSession is returned for unknown or expired tokens
var ErrNoSession = perrs.NotFoundf("session not found")

// SessionStore maps tokens to subjects with a ttl
type SessionStore interface {
	Put(ctx context.Context, token, subject string, ttl time.Duration) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

type entry struct {
	subject string
	expires time.Time
}

// Memory is an in process SessionStore. Expired entries are dropped when read
// and swept on every Put.
type Memory struct {
	mu  sync.Mutex
	m   map[string]entry
	now func() time.Time
}

// NewMemory returns an empty memory store
func NewMemory() *Memory { return &Memory{m: map[string]entry{}, now: time.Now} }

// Put stores token
func (s *Memory) Put(_ context.Context, token, subject string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	maps.DeleteFunc(s.m, func(_ string, e entry) bool { return !now.Before(e.expires) })
	s.m[token] = entry{subject: subject, expires: now.Add(ttl)}
	return nil
}

// Get resolves token
func (s *Memory) Get(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[token]
	if !ok {
		return "", ErrNoSession
	}
	if !s.now().Before(e.expires) {
		delete(s.m, token)
		return "", ErrNoSession
	}
	return e.subject, nil
}

// Delete forgets token; unknown tokens are not an error
func (s *Memory) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, token)
	return nil
}

// redisCmds is the part of redis.UniversalClient sessions use
type redisCmds interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Redis keeps sessions in redis so they survive restarts and span replicas
type Redis struct {
	c redisCmds
}

// NewRedis wraps a redis client
func NewRedis(c redis.UniversalClient) *Redis { return &Redis{c: c} }

// Put stores token with SET EX
func (s *Redis) Put(ctx context.Context, token, subject string, ttl time.Duration) error {
	if err := s.c.Set(ctx, KeyPrefix+token, subject, ttl).Err(); err != nil {
		return perrs.Wrap(err, perrs.ErrorCodeUnavailable, "session store write failed")
	}
	return nil
}

// Get resolves token
func (s *Redis) Get(ctx context.Context, token string) (string, error) {
	sub, err := s.c.Get(ctx, KeyPrefix+token).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", ErrNoSession
	case err != nil:
		return "", perrs.Wrap(err, perrs.ErrorCodeUnavailable, "session store read failed")
	}
	return sub, nil
}

// Delete forgets token
func (s *Redis) Delete(ctx context.Context, token string) error {
	if err := s.c.Del(ctx, KeyPrefix+token).Err(); err != nil {
		return perrs.Wrap(err, perrs.ErrorCodeUnavailable, "session store delete failed")
	}
	return nil
}
