package krholiday

import (
	"errors"
	"testing"
	"time"
)

// d is a test helper to construct dates.
func d(year int, month time.Month, day int) Date {
	return MustDate(year, month, day)
}

func TestDateBefore_EqualDates(t *testing.T) {
	t.Parallel()

	d1 := d(2026, time.January, 1)
	if d1.Before(d1) {
		t.Error("equal dates: d.Before(d) should be false")
	}
	if d1.After(d1) {
		t.Error("equal dates: d.After(d) should be false")
	}
}

func TestDateBefore_SameYearDifferentMonth(t *testing.T) {
	t.Parallel()

	if !d(2026, time.January, 31).Before(d(2026, time.February, 1)) {
		t.Error("Jan 31 should be before Feb 1")
	}
}

func TestDateBefore_DifferentYear(t *testing.T) {
	t.Parallel()

	if !d(2025, time.December, 31).Before(d(2026, time.January, 1)) {
		t.Error("2025-12-31 should be before 2026-01-01")
	}
}

func TestDateInRange_Boundaries(t *testing.T) {
	t.Parallel()

	from := d(2026, time.January, 1)
	to := d(2026, time.January, 31)

	if !from.inRange(from, to) {
		t.Error("from date should be in range (inclusive)")
	}
	if !to.inRange(from, to) {
		t.Error("to date should be in range (inclusive)")
	}
	if d(2025, time.December, 31).inRange(from, to) {
		t.Error("day before from should not be in range")
	}
	if d(2026, time.February, 1).inRange(from, to) {
		t.Error("day after to should not be in range")
	}
}

func TestNewDate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"month 13", 2025, 13, 1},
		{"month 0", 2025, 0, 1},
		{"February 30", 2025, time.February, 30},
		{"February 29 in common year", 2025, time.February, 29},
		{"April 31", 2025, time.April, 31},
		{"day 0", 2025, time.January, 0},
		{"year 0", 0, time.January, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.day)
			var ferr *FormatError
			if !errors.As(err, &ferr) {
				t.Fatalf("NewDate(%d, %d, %d) error = %v, want *FormatError", tt.year, tt.month, tt.day, err)
			}
		})
	}
}

func TestNewDate_LeapDay(t *testing.T) {
	t.Parallel()

	if _, err := NewDate(2024, time.February, 29); err != nil {
		t.Errorf("2024-02-29 should be valid: %v", err)
	}
}

func TestUTCMidnight(t *testing.T) {
	t.Parallel()

	got := d(2026, time.January, 1).UTCMidnight()
	want := time.Date(2025, time.December, 31, 15, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("UTCMidnight = %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("UTCMidnight location = %v, want UTC", got.Location())
	}
}

func TestDateOf_KSTNormalization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		time time.Time
		want Date
	}{
		{
			// 2025-12-31 15:00 UTC = 2026-01-01 00:00 KST
			"UTC 15:00 is already the next day in KST",
			time.Date(2025, time.December, 31, 15, 0, 0, 0, time.UTC),
			d(2026, time.January, 1),
		},
		{
			// 2025-12-31 14:59 UTC = 2025-12-31 23:59 KST
			"UTC 14:59 is still the same day in KST",
			time.Date(2025, time.December, 31, 14, 59, 0, 0, time.UTC),
			d(2025, time.December, 31),
		},
		{
			// US Pacific (UTC-8): 2025-12-31 08:00 PST = 2026-01-01 01:00 KST
			"US Pacific morning is the next day in KST",
			time.Date(2025, time.December, 31, 8, 0, 0, 0, time.FixedZone("PST", -8*60*60)),
			d(2026, time.January, 1),
		},
		{
			"KST late evening",
			time.Date(2026, time.January, 1, 23, 59, 59, 0, kstZone),
			d(2026, time.January, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateOf(tt.time); got != tt.want {
				t.Errorf("DateOf(%v) = %v, want %v", tt.time.Format(time.RFC3339), got, tt.want)
			}
		})
	}
}

func TestUTCMidnight_RoundTrip(t *testing.T) {
	t.Parallel()

	for cur := d(2023, time.December, 25); cur.Before(d(2025, time.January, 10)); cur = cur.AddDays(1) {
		if got := DateOf(cur.UTCMidnight()); got != cur {
			t.Fatalf("DateOf(UTCMidnight(%v)) = %v", cur, got)
		}
	}
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from Date
		n    int
		want Date
	}{
		{d(2025, time.December, 31), 1, d(2026, time.January, 1)},
		{d(2026, time.January, 1), -1, d(2025, time.December, 31)},
		{d(2024, time.February, 28), 1, d(2024, time.February, 29)},
		{d(2025, time.February, 28), 1, d(2025, time.March, 1)},
		{d(2025, time.August, 25), 0, d(2025, time.August, 25)},
		{d(2025, time.January, 1), 365, d(2026, time.January, 1)},
	}
	for _, tt := range tests {
		if got := tt.from.AddDays(tt.n); got != tt.want {
			t.Errorf("%v.AddDays(%d) = %v, want %v", tt.from, tt.n, got, tt.want)
		}
	}
}

func TestDateString(t *testing.T) {
	t.Parallel()

	if got := d(800, time.March, 5).String(); got != "0800-03-05" {
		t.Errorf("String = %q, want 0800-03-05", got)
	}
	if !(Date{}).IsZero() || d(2025, time.January, 1).IsZero() {
		t.Error("IsZero mismatch")
	}
}
