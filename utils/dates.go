// utils/dates.go
package utils

import (
	"math"
	"time"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DayIn carries t's calendar date, read in t's own location, over to
// midnight in loc. Date columns round-trip through the database as UTC
// midnight, so comparing instants across locations would shift the
// calendar day; this keeps the date and drops the instant.
func DayIn(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// DaysUntil returns the number of whole calendar days from today to
// target, ignoring time-of-day on both sides. The target's calendar
// date is read in today's location so a UTC-stored date and a local
// "today" compare on the same calendar. Ceiling division keeps the next
// calendar day at 1 even when the normalized gap is under 24 hours.
// Negative results mean the target is in the past.
func DaysUntil(today, target time.Time) int {
	start := BeginningOfDay(today)
	end := DayIn(target, today.Location())
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
