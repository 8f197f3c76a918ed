// File: timex.go
// Title: Date Arithmetic and Inspection Functions
// Description: Implements flexible timestamp parsing, calendar arithmetic,
//              period boundaries, and date classification helpers on top of
//              the standard time package.
// Author: icapri
// Version: v0.1.0
// Created: 2026-08-28
// Modified: 2026-08-28
//
// Change History:
// - 2026-08-28 v0.1.0: Initial implementation

package timex

import (
	"time"

	"github.com/icapri/utilities-sub001/core/errors"
)

// ===============================
// Layout Constants
// ===============================

const (
	// ISO formats
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"

	// Common interchange formats
	DateTime = "2006-01-02 15:04:05"

	// Short formats
	ShortDate     = "01/02/2006"
	ShortDateTime = "01/02/2006 15:04"

	// Compact formats
	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
)

// flexibleLayouts lists the layouts ParseFlexible tries, most specific first.
var flexibleLayouts = []string{
	time.RFC3339,
	ISO8601,
	ISO8601DateTime,
	DateTime,
	ISO8601Date,
	ShortDateTime,
	ShortDate,
	CompactDateTime,
	CompactDate,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
}

// ===============================
// Parsing
// ===============================

// ParseFlexible attempts to parse value against a list of common
// timestamp layouts and returns the first successful interpretation.
// It fails with a structured parse error when no layout matches.
func ParseFlexible(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.TimexParseError("ParseFlexible", value, nil)
	}

	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.TimexParseError("ParseFlexible", value, nil)
}

// ParseDate parses a date-only string against common date layouts
func ParseDate(value string) (time.Time, error) {
	layouts := []string{
		ISO8601Date,
		ShortDate,
		CompactDate,
		"2006-1-2",
		"2.1.2006",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.TimexParseError("ParseDate", value, nil)
}

// ===============================
// Calendar Arithmetic
// ===============================

// AddDays returns t shifted by the given number of calendar days
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddMonths returns t shifted by the given number of months.
// When the source day does not exist in the target month the result is
// clamped to the last day of that month, so January 31 plus one month
// is February 28 (or 29), not March 2.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	totalMonths := int(month) - 1 + months
	targetYear := year + totalMonths/12
	targetMonth := time.Month(totalMonths%12 + 1)
	if totalMonths < 0 && totalMonths%12 != 0 {
		targetYear--
		targetMonth = time.Month(totalMonths%12 + 13)
	}

	if max := DaysInMonth(targetYear, targetMonth); day > max {
		day = max
	}

	return time.Date(targetYear, targetMonth, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddYears returns t shifted by the given number of years, with
// February 29 clamped to February 28 in non-leap target years
func AddYears(t time.Time, years int) time.Time {
	return AddMonths(t, years*12)
}

// DaysBetween returns the number of whole calendar days from start to
// end. The result is negative when end lies before start.
func DaysBetween(start, end time.Time) int {
	startDay := StartOfDay(start.UTC())
	endDay := StartOfDay(end.UTC())
	return int(endDay.Sub(startDay).Hours() / 24)
}

// Age returns the number of completed years between birthDate and
// referenceDate, the way ages are counted colloquially
func Age(birthDate, referenceDate time.Time) int {
	if referenceDate.Before(birthDate) {
		return 0
	}

	years := referenceDate.Year() - birthDate.Year()
	anniversary := AddYears(birthDate, years)
	if anniversary.After(referenceDate) {
		years--
	}
	return years
}

// ===============================
// Calendar Facts
// ===============================

// IsLeapYear checks whether the given year has a February 29
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the
// given year
func DaysInMonth(year int, month time.Month) int {
	// day zero of the following month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ===============================
// Period Boundaries
// ===============================

// StartOfDay returns t with the time-of-day component zeroed
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the day containing t
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfMonth returns midnight on the first day of the month containing t
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of the month containing t
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(time.Date(t.Year(), t.Month(), DaysInMonth(t.Year(), t.Month()), 0, 0, 0, 0, t.Location()))
}

// ===============================
// Classification
// ===============================

// IsWeekend checks whether t falls on a Saturday or Sunday
func IsWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsWeekday checks whether t falls on Monday through Friday
func IsWeekday(t time.Time) bool {
	return !IsWeekend(t)
}

// IsBetween checks whether t lies in the inclusive interval [start, end]
func IsBetween(t, start, end time.Time) bool {
	if end.Before(start) {
		start, end = end, start
	}
	return !t.Before(start) && !t.After(end)
}

// IsSameDay checks whether a and b fall on the same calendar day
// in their respective locations
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ===============================
// Selection
// ===============================

// Min returns the earlier of two times
func Min(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// Max returns the later of two times
func Max(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// Clamp restricts t to the inclusive interval [min, max]
func Clamp(t, min, max time.Time) time.Time {
	if min.After(max) {
		min, max = max, min
	}
	if t.Before(min) {
		return min
	}
	if t.After(max) {
		return max
	}
	return t
}
