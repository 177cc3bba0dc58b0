package sqlite

import (
	"time"
)

// FormatTimeForDB formats a time.Time value as an RFC 3339 string for
// consistent durable storage.
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// FormatTimePtrForDB formats a *time.Time value as an RFC 3339 string,
// returning nil if the pointer is nil.
func FormatTimePtrForDB(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatTimeForDB(*t)
	return &s
}

// ParseTimeFromDB parses an RFC 3339 formatted time string from storage.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// ParseTimePtrFromDB parses an optional RFC 3339 time string, returning
// nil for an absent value.
func ParseTimePtrFromDB(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseTimeFromDB(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
