package krholiday

import "time"

// Predicate reports whether a date satisfies some condition. Predicates
// passed to the search functions must be pure.
type Predicate func(Date) bool

// FindNext returns the count-th date strictly after start that satisfies p.
// The start date itself is never tested. It returns [ErrInvalidCount] if
// count is not positive.
//
// The walk stops with [ErrOutOfRange] if it leaves the years 1 through 9999
// first, so a predicate that never holds scans the whole range.
func FindNext(start Date, p Predicate, count int) (Date, error) {
	return walk(start, p, count, oneDay)
}

// FindPrevious returns the count-th date strictly before start that
// satisfies p. The start date itself is never tested. It returns
// [ErrInvalidCount] if count is not positive.
func FindPrevious(start Date, p Predicate, count int) (Date, error) {
	return walk(start, p, count, -oneDay)
}

// FindLast returns start if it satisfies p, and otherwise the nearest
// earlier date that does. It returns the zero Date if no date from year 1
// onwards matches.
func FindLast(start Date, p Predicate) Date {
	if p(start) {
		return start
	}
	d, _ := walk(start, p, 1, -oneDay)
	return d
}

// walk steps from the KST midnight of start one day at a time, re-deriving
// the KST calendar date at each step, until p has matched count times.
func walk(start Date, p Predicate, count int, step time.Duration) (Date, error) {
	if count <= 0 {
		return Date{}, ErrInvalidCount
	}

	t := start.UTCMidnight()
	found := 0
	for {
		t = t.Add(step)
		d := DateOf(t)
		if !d.inRange(minDate, maxDate) {
			return Date{}, ErrOutOfRange
		}
		if p(d) {
			found++
			if found == count {
				return d, nil
			}
		}
	}
}
