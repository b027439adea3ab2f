package krholiday

import (
	"fmt"
	"time"
)

// kstOffset is the fixed UTC offset of Korea Standard Time. Korea has not
// observed daylight saving time since 1988, so no DST branch exists.
const kstOffset = 9 * time.Hour

// kstZone is the Asia/Seoul timezone (UTC+9) used to normalize all instants
// to the Korean calendar date before holiday lookups.
var kstZone = time.FixedZone("Asia/Seoul", int(kstOffset/time.Second))

const oneDay = 24 * time.Hour

var (
	minDate = Date{year: 1, month: time.January, day: 1}
	maxDate = Date{year: 9999, month: time.December, day: 31}
)

// Date is a calendar date in the Korean calendar with no time-of-day
// component. The zero Date is not a valid date; obtain one from [NewDate],
// [Parse] or [DateOf]. Dates are comparable and can be used as map keys.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the Date for the given year, month and day. It fails with a
// *FormatError if the triple is not a valid Gregorian date (e.g. February 30).
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{year: year, month: month, day: day}
	if reason := d.validate(); reason != "" {
		return Date{}, &FormatError{
			Input:   fmt.Sprintf("%04d-%02d-%02d", year, int(month), day),
			Pattern: DefaultLayout,
			Reason:  reason,
		}
	}
	return d, nil
}

// MustDate is like [NewDate] but panics on an invalid date.
// It is intended for tests and package-level variables.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// validate returns an empty string for a valid date and a short reason otherwise.
func (d Date) validate() string {
	switch {
	case d.year < 1 || d.year > 9999:
		return "year out of range"
	case d.month < time.January || d.month > time.December:
		return "month out of range"
	case d.day < 1 || d.day > daysIn(d.month, d.year):
		return "day out of range"
	}
	return ""
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOf returns the KST calendar date containing the instant t, regardless
// of t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.In(kstZone).Date()
	return Date{year: y, month: m, day: d}
}

// UTCMidnight returns the instant of 00:00 KST on d, expressed in UTC. This
// is 15:00 UTC on the previous day.
func (d Date) UTCMidnight() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, kstZone).UTC()
}

// Time returns midnight of d in UTC wall-clock terms, which is convenient for
// interop with code that formats dates with the time package.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// AddDays returns the date n calendar days after d (before d if n is negative).
// The result is not checked against the years 1 through 9999.
func (d Date) AddDays(n int) Date {
	y, m, dd := time.Date(d.year, d.month, d.day+n, 0, 0, 0, 0, time.UTC).Date()
	return Date{year: y, month: m, day: dd}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) inRange(from, to Date) bool {
	return !d.Before(from) && !to.Before(d)
}

// String returns d in ISO form (yyyy-MM-dd).
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
