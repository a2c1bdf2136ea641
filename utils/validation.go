// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	slugRegex  = regexp.MustCompile(`^[a-z0-9-]+$`)
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	timeRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidatePhone checks if a phone number is in a valid international format.
// Allows an optional + prefix followed by 2-15 digits.
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	return phoneRegex.MatchString(cleaned)
}

// ValidateSlug checks lowercase-alnum-hyphen form, e.g. "my-salon".
func ValidateSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}

// ValidateEmail does a basic shape check; the backend is authoritative.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateTimeOfDay checks an HH:MM 24-hour clock value.
func ValidateTimeOfDay(v string) bool {
	return timeRegex.MatchString(v)
}
