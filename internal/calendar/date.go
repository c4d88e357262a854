package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the persisted event date format: day-month-year with hyphen
// separators. Existing stored data uses this exact form, so it must survive
// round-trips unchanged.
const DateLayout = "02-01-2006"

// TimeLayout is the wall-clock time-of-day format for start/end times.
const TimeLayout = "15:04"

// ParseDate parses a DD-MM-YYYY string into a local midnight time.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("date %q does not split into day-month-year", s)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a time as a DD-MM-YYYY date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SameDay reports whether two times fall on the same calendar date,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// combineDateTime anchors an HH:MM time-of-day onto a calendar date.
// An unparseable time-of-day degrades to midnight rather than failing,
// so a bad start time never drops an event from time-based queries.
func combineDateTime(day time.Time, hhmm string) time.Time {
	tod, err := time.Parse(TimeLayout, hhmm)
	if err != nil {
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	}
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, day.Location())
}
