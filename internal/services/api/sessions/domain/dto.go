// Package domain holds DTOs for session metrics
package domain

// Metrics is the session report
// SessionKeyEventRate stays null until key events are configured upstream
type Metrics struct {
	ActiveUsers                  int64    `json:"activeUsers" example:"1840"`
	AverageSessionDuration       float64  `json:"averageSessionDuration" example:"95.2"`
	BounceRate                   float64  `json:"bounceRate" example:"42.5"`
	EngagedSessions              int64    `json:"engagedSessions" example:"1210"`
	EngagedSessionsPerActiveUser float64  `json:"engagedSessionsPerActiveUser" example:"0.66"`
	EngagementRate               float64  `json:"engagementRate" example:"57.5"`
	SessionKeyEventRate          *float64 `json:"sessionKeyEventRate"`
	Sessions                     int64    `json:"sessions" example:"2100"`
	SessionsPerActiveUser        float64  `json:"sessionsPerActiveUser" example:"1.14"`
}
