// Package net provides request context values and the response envelope shared by transports
package net

import (
	"context"

	"gadash/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keySubject ctxKey = "subject"

// WithRequest annotates context with the request id and the authenticated subject
// the logger sees the same values so logger.C picks them up
func WithRequest(ctx context.Context, reqID, subject string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if subject != "" {
		ctx = context.WithValue(ctx, keySubject, subject)
	}
	if reqID == "" && subject == "" {
		return ctx
	}
	return logger.WithRequest(ctx, reqID, subject)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Subject returns the authenticated dashboard session subject if present
func Subject(ctx context.Context) string {
	if v, ok := ctx.Value(keySubject).(string); ok {
		return v
	}
	return ""
}
