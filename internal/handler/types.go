package handler

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ConflictResponse represents a duplicate-signup response
type ConflictResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	AlreadyExists bool   `json:"alreadyExists"`
}

// SignupResponse represents a successful signup response
type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Database  string            `json:"database"`
	Metrics   map[string]string `json:"metrics,omitempty"`
}

// RefresherStatusResponse represents the stats refresher status
type RefresherStatusResponse struct {
	Running bool       `json:"running"`
	NextRun *time.Time `json:"next_run,omitempty"`
	LastRun *time.Time `json:"last_run,omitempty"`
}
