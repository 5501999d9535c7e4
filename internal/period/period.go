// Package period computes the calendar windows used for summaries.
package period

import (
	"fmt"
	"time"
)

// Period selects an aggregation window.
type Period int

const (
	Week Period = iota
	Month
)

// DateLayout is the only date format accepted from users and the format
// dates are stored in.
const DateLayout = "2006-01-02"

func (p Period) String() string {
	switch p {
	case Week:
		return "week"
	case Month:
		return "month"
	}
	return "unknown"
}

// ParsePeriod maps a user-supplied name to a Period.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "week", "weekly":
		return Week, nil
	case "month", "monthly":
		return Month, nil
	}
	return 0, fmt.Errorf("unknown period %q (want week or month)", s)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return d, nil
}

// Range returns the inclusive start and end dates of the window
// containing ref: the Monday-start week, or the calendar month.
func Range(p Period, ref time.Time) (time.Time, time.Time) {
	ref = truncate(ref)
	switch p {
	case Week:
		// Monday-start week. time.Weekday puts Sunday at 0.
		offset := (int(ref.Weekday()) + 6) % 7
		start := ref.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6)
	default:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return start, start.AddDate(0, 1, -1)
	}
}

// MonthRange is Range(Month, ref) without the Period argument, for
// callers that only ever need the calendar month.
func MonthRange(ref time.Time) (time.Time, time.Time) {
	return Range(Month, ref)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
