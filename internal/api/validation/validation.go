package validation

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

const (
	maxNameLen        = 255
	maxDescriptionLen = 2000
	minPasswordLen    = 6
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func checkName(field, value string) []FieldError {
	name := strings.TrimSpace(value)
	switch {
	case name == "":
		return []FieldError{{Field: field, Message: field + " is required"}}
	case len(name) > maxNameLen:
		return []FieldError{{Field: field, Message: field + " must be at most 255 characters"}}
	}
	return nil
}

// checkKnown requires value to be one of known. An empty known list accepts
// any non-empty value, so lookups that failed to load do not block writes.
func checkKnown(field, value string, known []string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return []FieldError{{Field: field, Message: field + " is required"}}
	}
	if len(known) > 0 && !slices.Contains(known, value) {
		return []FieldError{{Field: field, Message: field + " is not a registered option"}}
	}
	return nil
}

func checkDate(field, value string) []FieldError {
	if value == "" {
		return nil
	}
	if _, err := ParseDate(value); err != nil {
		return []FieldError{{Field: field, Message: field + " must be a date in YYYY-MM-DD format"}}
	}
	return nil
}
