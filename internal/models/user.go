// Package models contains data structures for the application's domain models.
package models

import (
	"strings"
	"time"
)

// Role values for User.Role. The role set is closed; anything else is a
// data error.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Certification is a professional certification attached to a user profile.
type Certification struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Issuer       string     `json:"issuer"`
	DateObtained time.Time  `json:"date_obtained"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	CredentialID string     `json:"credential_id,omitempty"`
	Verified     bool       `json:"verified"`
}

// User represents a staff member. Email is unique across all users.
// PasswordHash is persisted with the record but stripped from API responses
// via Public.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	JoinDate     time.Time `json:"join_date"`

	Position       string          `json:"position"`
	Department     string          `json:"department"`
	Bio            string          `json:"bio"`
	Avatar         string          `json:"avatar,omitempty"`
	Experience     string          `json:"experience"`
	Location       string          `json:"location"`
	Phone          string          `json:"phone,omitempty"`
	LinkedIn       string          `json:"linkedin,omitempty"`
	Skills         []string        `json:"skills"`
	Certifications []Certification `json:"certifications"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// FullName returns the display name for the user.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Public returns a copy of the user safe to serialize in API responses.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// PublicUsers strips credentials from a slice of users.
func PublicUsers(users []User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = u.Public()
	}
	return out
}
