package models

import "time"

// Training is an offered training session. Released=false means the training
// is a draft visible only to admins and its creator. Release is one-way.
type Training struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Duration    string    `json:"duration"`
	Capacity    int       `json:"capacity"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	Instructor  string    `json:"instructor"`
	Released    bool      `json:"released"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
