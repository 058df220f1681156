// Package domain holds DTOs for dashboard login
package domain

import "time"

// Subject is the only dashboard principal
const Subject = "admin"

// LoginInput is the login body
type LoginInput struct {
	Code string `json:"code" validate:"required,len=4,numeric" example:"1234"`
}

// LoginOutput carries the bearer token for later requests
type LoginOutput struct {
	Token     string    `json:"token" example:"2f0c6a1e-8d2b-4c55-9a43-3f6f0e0c1b7d"`
	ExpiresAt time.Time `json:"expiresAt" example:"2025-09-04T13:00:00Z"`
}
