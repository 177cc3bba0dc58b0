package domain

import "time"

// dayKeyLayout is the locale-independent day identifier used for
// grouping tasks and for the stacking marker. Only equality of keys is
// ever relied on.
const dayKeyLayout = "2006-01-02"

// DayKey converts a timestamp to its calendar-day identifier.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseDayKey parses a day identifier back into a midnight timestamp.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, key, time.Local)
}

// DayStart truncates a timestamp to midnight of its calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
