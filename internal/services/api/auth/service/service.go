// Package service issues and resolves dashboard login sessions
package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	perrs "gadash/internal/platform/errors"
	"gadash/internal/platform/logger"
	"gadash/internal/services/api/auth/domain"
	"gadash/internal/services/api/auth/repo"

	"github.com/google/uuid"
)

// DefaultTTL is how long a login lasts
const DefaultTTL = 24 * time.Hour

// Service defines the auth service contract
type Service interface {
	domain.ServicePort
}

// Options control login behavior
type Options struct {
	// AccessCode is the shared dashboard code; empty disables login
	AccessCode string
	TTL        time.Duration
	// AllowAnonymous permits an empty AccessCode, leaving analytics routes open
	AllowAnonymous bool
}

// Svc implements the auth service
type Svc struct {
	store repo.SessionStore
	code  []byte
	ttl   time.Duration

	now      func() time.Time
	newToken func() string
}

// New constructs an auth service
func New(store repo.SessionStore, opt Options) *Svc {
	if store == nil {
		panic("auth.Service requires a non nil SessionStore")
	}
	ttl := opt.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Svc{
		store:    store,
		code:     []byte(opt.AccessCode),
		ttl:      ttl,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// Enabled reports whether an access code is configured
func (s *Svc) Enabled() bool { return len(s.code) > 0 }

// Login trades the access code for a session token
func (s *Svc) Login(ctx context.Context, code, ip string) (domain.LoginOutput, error) {
	if !s.Enabled() {
		return domain.LoginOutput{}, perrs.Forbiddenf("dashboard login is disabled")
	}
	if subtle.ConstantTimeCompare([]byte(code), s.code) != 1 {
		logger.C(ctx).Warn().Str("ip", ip).Msg("dashboard login failed")
		return domain.LoginOutput{}, perrs.Unauthorizedf("invalid access code")
	}

	token := s.newToken()
	if err := s.store.Put(ctx, token, domain.Subject, s.ttl); err != nil {
		return domain.LoginOutput{}, err
	}
	logger.C(ctx).Info().Str("ip", ip).Msg("dashboard login")
	return domain.LoginOutput{Token: token, ExpiresAt: s.now().Add(s.ttl).UTC()}, nil
}

// Logout ends a session; unknown tokens are ignored
func (s *Svc) Logout(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}

// Resolve returns the subject behind a live token
func (s *Svc) Resolve(ctx context.Context, token string) (string, error) {
	sub, err := s.store.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, repo.ErrNoSession) {
			logger.C(ctx).Error().Err(err).Msg("session lookup failed")
		}
		return "", err
	}
	return sub, nil
}
