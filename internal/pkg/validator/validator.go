package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Roll numbers are uppercase alphanumerics, e.g. AM.EN.U4CSE21001 style
// identifiers collapse to letters, digits and dots.
var rollNoRegex = regexp.MustCompile(`^[A-Za-z0-9.\-_]{3,30}$`)

func IsValidRollNo(rollNo string) bool {
	return rollNoRegex.MatchString(rollNo)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Year of study, 1 through 5
func IsValidYear(year int) bool {
	return year >= 1 && year <= 5
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]+$`)

// IsValidUsername checks the global admin username charset.
func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}
