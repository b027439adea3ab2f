package krholiday

import (
	"errors"
	"fmt"
)

// ErrInvalidCount is returned by the search functions when the requested
// count is zero or negative.
var ErrInvalidCount = errors.New("count must be a positive number")

// ErrOutOfRange is returned by the search functions when the walk would
// leave the years 1 through 9999 before finding a match.
var ErrOutOfRange = errors.New("date out of range")

// FormatError reports a date string that does not match its format pattern,
// a malformed pattern, or a date that does not exist in the calendar.
type FormatError struct {
	Input   string // The date string being parsed; empty for pattern errors.
	Pattern string // The format pattern (e.g. "yyyy-MM-dd").
	Reason  string
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("krholiday: invalid format %q: %s", e.Pattern, e.Reason)
	}
	return fmt.Sprintf("krholiday: parsing %q as %q: %s", e.Input, e.Pattern, e.Reason)
}
