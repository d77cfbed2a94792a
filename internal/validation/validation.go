// Package validation contains input validation rules for user-supplied data.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 128
	maxNameLen     = 60
	maxBioLen      = 500
	maxContentLen  = 5000
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and trims an email address. All lookups and
// stored values go through this so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks basic email address shape.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if len(email) > 254 || !emailRe.MatchString(email) {
		return errors.New("email address is not valid")
	}
	return nil
}

// ValidatePassword enforces the password policy: 8-128 characters with at
// least one letter and one digit.
func ValidatePassword(password string) error {
	n := len([]rune(password))
	if n < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	if n > maxPasswordLen {
		return errors.New("password must be at most 128 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one digit")
	}
	return nil
}

// ValidateName checks a first or last name component.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > maxNameLen {
		return errors.New("name too long (max 60 characters)")
	}
	return nil
}

// ValidateBio checks a profile bio.
func ValidateBio(bio string) error {
	if len(bio) > maxBioLen {
		return errors.New("bio too long (max 500 characters)")
	}
	return nil
}

// ValidatePostContent checks post and comment body text.
func ValidatePostContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.New("content is required")
	}
	if len(content) > maxContentLen {
		return errors.New("content too long (max 5000 characters)")
	}
	return nil
}
