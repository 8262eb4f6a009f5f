package util

import (
	"time"
)

// StartOfDay truncates an instant to midnight of its civil day, keeping the
// location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfNextDay advances to midnight of the following civil day. AddDate
// handles DST transitions and month/year rollover.
func StartOfNextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}
