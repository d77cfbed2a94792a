package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "ada@example.com", false},
		{"Valid Subdomain", "ada@mail.example.co.uk", false},
		{"Valid Plus", "ada+tag@example.com", false},
		{"Empty", "", true},
		{"No At", "ada.example.com", true},
		{"No TLD", "ada@example", true},
		{"Spaces", "ada lovelace@example.com", true},
		{"Too Long", strings.Repeat("a", 250) + "@ex.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "securepass12", false},
		{"Exactly Min Length", "abcdefg1", false},
		{"Exactly Max Length", strings.Repeat("b", 127) + "1", false},
		{"Too Short", "abc1", true},
		{"Too Long", strings.Repeat("b", 128) + "1", true},
		{"No Digit", "securepassword", true},
		{"No Letter", "1234567890", true},
		{"Unicode Letters", "pässwörter1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateName("Ada"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("a", 61)))
}

func TestValidateBio(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateBio(""))
	assert.NoError(t, ValidateBio("I build things."))
	assert.Error(t, ValidateBio(strings.Repeat("a", 501)))
}

func TestValidatePostContent(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidatePostContent("Shipped the new dashboard today."))
	assert.Error(t, ValidatePostContent(""))
	assert.Error(t, ValidatePostContent("   \n\t"))
	assert.Error(t, ValidatePostContent(strings.Repeat("a", 5001)))
}
