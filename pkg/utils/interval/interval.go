// Package interval computes calendar-aware elapsed time and renders it as
// natural-language text, e.g. "1 hour 5 minutes 3 seconds".
package interval

import (
	"strconv"
	"strings"
	"time"
)

// Duration is an elapsed interval broken down into calendar units.
// Sub-second precision is discarded.
type Duration struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Between returns the calendar duration from start to end. Arguments are
// swapped when end precedes start.
func Between(start, end time.Time) Duration {
	if end.Before(start) {
		start, end = end, start
	}
	start = start.UTC()
	end = end.UTC()

	var d Duration

	d.Years = end.Year() - start.Year()
	for d.Years > 0 && addMonths(start, 12*d.Years).After(end) {
		d.Years--
	}
	cursor := addMonths(start, 12*d.Years)

	d.Months = (end.Year()-cursor.Year())*12 + int(end.Month()) - int(cursor.Month())
	for d.Months > 0 && addMonths(cursor, d.Months).After(end) {
		d.Months--
	}
	if d.Months < 0 {
		d.Months = 0
	}
	cursor = addMonths(cursor, d.Months)

	rest := end.Sub(cursor)
	d.Days = int(rest / (24 * time.Hour))
	rest -= time.Duration(d.Days) * 24 * time.Hour
	d.Hours = int(rest / time.Hour)
	rest -= time.Duration(d.Hours) * time.Hour
	d.Minutes = int(rest / time.Minute)
	rest -= time.Duration(d.Minutes) * time.Minute
	d.Seconds = int(rest / time.Second)

	return d
}

// addMonths adds n calendar months, clamping the day to the end of the
// target month instead of overflowing into the next one.
func addMonths(t time.Time, n int) time.Time {
	y, m, day := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// IsZero reports whether every unit is zero
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// String renders non-zero units from largest to smallest. A zero duration
// renders as "0 seconds".
func (d Duration) String() string {
	units := []struct {
		value int
		name  string
	}{
		{d.Years, "year"},
		{d.Months, "month"},
		{d.Days, "day"},
		{d.Hours, "hour"},
		{d.Minutes, "minute"},
		{d.Seconds, "second"},
	}

	var parts []string
	for _, u := range units {
		if u.value == 0 {
			continue
		}
		parts = append(parts, plural(u.value, u.name))
	}

	if len(parts) == 0 {
		return plural(0, "second")
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	s := strconv.Itoa(n) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
