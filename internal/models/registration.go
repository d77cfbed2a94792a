package models

import "time"

// TrainingRegistration status values. Transitions are admin-only:
// pending -> approved, pending -> rejected, approved -> completed.
const (
	RegistrationPending   = "pending"
	RegistrationApproved  = "approved"
	RegistrationRejected  = "rejected"
	RegistrationCompleted = "completed"
)

// TrainingRegistration links a user to a training. At most one registration
// exists per (user, training) pair; the create operation enforces this, not
// the storage layer.
type TrainingRegistration struct {
	ID           string     `json:"id"`
	TrainingID   string     `json:"training_id"`
	UserID       string     `json:"user_id"`
	Status       string     `json:"status"`
	RegisteredAt time.Time  `json:"registered_at"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// CountsAgainstCapacity reports whether the registration occupies a seat.
// Rejected registrations free their seat; everything else holds one.
func (r *TrainingRegistration) CountsAgainstCapacity() bool {
	return r.Status != RegistrationRejected
}
