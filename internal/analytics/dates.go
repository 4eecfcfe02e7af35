// Package analytics holds the pure aggregation functions behind the dashboard and
// analytics endpoints. Nothing here performs I/O or reads the clock; callers pass
// the fetched rows and, where a calendar is involved, the current time.
package analytics

import (
	"time"

	"learnboard/internal/domain"
)

// DateLayout is the calendar date format used in every date-keyed result.
const DateLayout = "2006-01-02"

// StartOfDate is the first instant of the calendar date in loc. Out-of-range
// days normalize like time.Date. When a DST jump skips midnight the date starts
// at the transition instead.
func StartOfDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	y, m, d := time.Date(year, month, day, 12, 0, 0, 0, loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if sy, sm, sd := start.Date(); sy != y || sm != m || sd != d {
		_, start = start.ZoneBounds()
	}
	return start
}

// DayOf is the first instant of the calendar date of t in loc.
func DayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return StartOfDate(y, m, d, loc)
}

// AddDays moves n calendar dates from the date of t, in t's location, and returns
// the first instant of that date.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return StartOfDate(y, m, d+n, t.Location())
}

// DateKey formats the calendar date of t in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// DayRange covers every calendar date from the date of from to the date of to, inclusive.
// Dates are taken in the location of from.
func DayRange(from, to time.Time) domain.DateRange {
	loc := from.Location()
	return domain.DateRange{
		From: DayOf(from, loc),
		To:   AddDays(to.In(loc), 1),
	}
}

// TrailingDays is the window of n calendar dates ending with the date of today.
func TrailingDays(today time.Time, n int) domain.DateRange {
	return domain.DateRange{
		From: AddDays(today, -(n - 1)),
		To:   AddDays(today, 1),
	}
}
