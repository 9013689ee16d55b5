package model

import "time"

// DateLayout is the calendar-date form used throughout the state tree.
const DateLayout = "2006-01-02"

// Today returns the current calendar date.
func Today() string {
	return time.Now().Format(DateLayout)
}

// TimestampFromDate derives a millisecond timestamp from a calendar date,
// used to back-fill legacy records that predate the timestamp field.
// A date that fails to parse yields 0.
func TimestampFromDate(date string) int64 {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

// DaysUntil returns the whole days between today and the given date,
// negative when the date is past. Used for due-date display only.
func DaysUntil(date string) (int, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(today).Hours() / 24), true
}
