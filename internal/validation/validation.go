// Package validation holds the pure shape validators shared by the services:
// identifier, email, phone, and date checks with their normalization rules.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	emailRegexp    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonDigitRegexp = regexp.MustCompile(`\D`)
)

// ValidID reports whether id is a well-formed UUID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// NormalizeEmail lowercases and trims the email so that uniqueness checks are
// case-insensitive and the stored value is canonical.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email has a plausible mailbox@domain.tld shape.
// Callers should normalize first.
func ValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// NormalizePhone strips every non-digit character from phone.
func NormalizePhone(phone string) string {
	return nonDigitRegexp.ReplaceAllString(phone, "")
}

// ValidPhone reports whether phone contains exactly 10 or 11 digits once
// formatting characters are stripped. 10 digits is a landline, 11 a mobile.
func ValidPhone(phone string) bool {
	n := len(NormalizePhone(phone))
	return n == 10 || n == 11
}

// ParseDate parses an RFC 3339 timestamp, falling back to a bare date.
// Parseability is the only server-side date invariant; whether the date is in
// the future is left to clients.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
