package market

import (
	"fmt"
	"strings"
	"time"
)

// DayFormat is the layout used to read and write calendar days.
const DayFormat = "2006-01-02"

// Day truncates t to midnight UTC of its calendar day. Every date used as a
// map key in this module goes through Day so that lookups compare equal.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("bad day %q: %w", s, err)
	}
	return Day(t), nil
}

// DateRange returns every calendar day from start to end, both inclusive.
// It returns nil when end is before start.
func DateRange(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil
	}
	n := int(end.Sub(start).Hours()/24) + 1
	days := make([]time.Time, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
