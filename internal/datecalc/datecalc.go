package datecalc

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey returns the calendar-day key (YYYY-MM-DD) for t in t's location.
// Keys sort lexicographically in chronological order.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// Midnight returns the start of the next day (midnight) in the same location.
func Midnight(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, t.Location())
}

// MonthLabel returns a label like "2026-08" for grouping entries by month.
func MonthLabel(t time.Time) string {
	return t.Format("2006-01")
}
