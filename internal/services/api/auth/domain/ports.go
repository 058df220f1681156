package domain

import "context"

// ServicePort is consumed by handlers and the bearer middleware
type ServicePort interface {
	Login(ctx context.Context, code, ip string) (LoginOutput, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (string, error)
}
