package models

import "time"

// Session is the singleton holding the currently authenticated user, if any.
// It is set on login and registration, cleared on logout, and survives
// process restarts through the record store.
type Session struct {
	UserID    string    `json:"user_id"`
	StartedAt time.Time `json:"started_at"`
}
