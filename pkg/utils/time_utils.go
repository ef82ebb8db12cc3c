// utils/timeutil.go
package utils

import "time"

// Trip dates travel over the wire as plain calendar days (YYYY-MM-DD).

func ParseTripDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

func FormatTripDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays shifts a calendar date without touching the clock component.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// DaySpan returns the inclusive number of calendar days between start and end.
func DaySpan(start, end time.Time) int {
	return int(StartOfDay(end).Sub(StartOfDay(start)).Hours()/24) + 1
}
