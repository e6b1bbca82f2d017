package util

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ValidDate reports whether s is a well-formed ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidClock reports whether s is a well-formed "HH:MM" value.
func ValidClock(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// Today returns the current calendar date as "YYYY-MM-DD" in local time.
// Both sides of every date comparison use this format, so plain string
// ordering is chronological ordering.
func Today() string {
	return time.Now().Format(DateLayout)
}

// NowClock returns the current wall clock as "HH:MM" in local time.
func NowClock() string {
	return time.Now().Format(TimeLayout)
}
