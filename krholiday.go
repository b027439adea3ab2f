// Package krholiday provides Korean public holiday and stock-exchange
// closure lookups, and business day / trading day arithmetic.
//
// A business day is a weekday that is not a public holiday (공휴일). A
// trading day is a weekday on which the Korea Exchange (KRX) is open, which
// additionally excludes exchange-only closures such as Labor Day and the
// year-end closure (연말 휴장일).
//
// Holiday data is compiled into this package at build time by
// cmd/genholidays and covers the years reported by [SupportedYears]. Years
// outside that range have no known holidays: lookups silently fall back to
// weekend-only logic. Use [Calendar.HasYear] to detect this.
//
// All days are KST (Asia/Seoul, UTC+9) calendar days. [DateOf] maps any
// instant to its KST date, so results do not depend on the local timezone.
//
// The string API accepts and returns dates in a caller-chosen format:
//
//	krholiday.IsBusinessDay("2025-08-15")                    // false, nil (광복절)
//	krholiday.NextBusinessDay("2025-08-29")                  // "2025-09-01", nil
//	krholiday.PreviousTradingDay("2025.01.02",
//		krholiday.WithCount(2), krholiday.WithFormat("yyyy.MM.dd")) // "2024.12.27", nil
//
// The Date API works on parsed values:
//
//	d := krholiday.MustDate(2025, time.December, 31)
//	cal := krholiday.Default()
//	cal.IsHoliday(d)        // false
//	cal.IsTradingHoliday(d) // true
package krholiday

import (
	"sort"
	"sync"
	"time"
)

// holidaySearchYears bounds how far NextHoliday and PreviousHoliday look.
const holidaySearchYears = 10

// Calendar answers holiday questions from a [Source]. Per-year holiday sets
// are built on first use and never modified afterwards. All methods are
// safe for concurrent use.
type Calendar struct {
	src   Source
	years sync.Map // int -> *yearSet
}

// yearSet is the read-only holiday data of one year.
type yearSet struct {
	public  map[Date]string
	trading map[Date]string // public holidays plus exchange closures
}

// New creates a Calendar backed by src. A nil src uses the built-in dataset.
func New(src Source) *Calendar {
	if src == nil {
		src = builtinSource{}
	}
	return &Calendar{src: src}
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New(builtinSource{})

// Default returns the Calendar backed by the built-in dataset.
func Default() *Calendar { return defaultCal }

// emptyYear is shared by every year its source has no data for.
var emptyYear = &yearSet{}

// year returns the holiday sets of the given year, building them on first
// use. Concurrent first lookups may each build a set; only one is kept.
func (c *Calendar) year(y int) *yearSet {
	if v, ok := c.years.Load(y); ok {
		return v.(*yearSet)
	}

	public := c.src.PublicHolidays(y)
	closures := c.src.ExchangeClosures(y)
	if len(public) == 0 && len(closures) == 0 {
		v, _ := c.years.LoadOrStore(y, emptyYear)
		return v.(*yearSet)
	}
	ys := &yearSet{
		public:  make(map[Date]string, len(public)),
		trading: make(map[Date]string, len(public)+len(closures)),
	}
	for _, h := range closures {
		ys.trading[h.Date] = h.Name
	}
	for _, h := range public {
		ys.public[h.Date] = h.Name
		ys.trading[h.Date] = h.Name
	}

	v, _ := c.years.LoadOrStore(y, ys)
	return v.(*yearSet)
}

// HasYear reports whether the calendar's source has any holiday data for the
// given year. Lookups for years without data treat every weekday as open.
func (c *Calendar) HasYear(year int) bool {
	ys := c.year(year)
	return len(ys.public) > 0 || len(ys.trading) > 0
}

// IsHoliday reports whether d is a public holiday.
func (c *Calendar) IsHoliday(d Date) bool {
	_, ok := c.year(d.year).public[d]
	return ok
}

// IsTradingHoliday reports whether the Korea Exchange is closed on d for a
// holiday. Every public holiday is a trading holiday.
func (c *Calendar) IsTradingHoliday(d Date) bool {
	_, ok := c.year(d.year).trading[d]
	return ok
}

// HolidayName returns the name of the public holiday on d, or an empty
// string if d is not a public holiday.
func (c *Calendar) HolidayName(d Date) string {
	return c.year(d.year).public[d]
}

// TradingHolidayName returns the name of the exchange closure on d, or an
// empty string if the exchange is not closed for a holiday on d.
func (c *Calendar) TradingHolidayName(d Date) string {
	return c.year(d.year).trading[d]
}

// HolidaysInYear returns the public holidays of the given year, sorted by date.
func (c *Calendar) HolidaysInYear(year int) []Holiday {
	return collect(c.year(year).public, nil)
}

// TradingHolidaysInYear returns the exchange closures of the given year,
// public holidays included, sorted by date.
func (c *Calendar) TradingHolidaysInYear(year int) []Holiday {
	return collect(c.year(year).trading, nil)
}

// HolidaysInMonth returns the public holidays in the given year and month,
// sorted by date.
func (c *Calendar) HolidaysInMonth(year int, month time.Month) []Holiday {
	return collect(c.year(year).public, func(d Date) bool { return d.month == month })
}

// NextHoliday returns the first public holiday strictly after d. It returns
// false if there is none within the next ten years of data.
func (c *Calendar) NextHoliday(d Date) (Holiday, bool) {
	for y := d.year; y <= d.year+holidaySearchYears; y++ {
		for _, h := range collect(c.year(y).public, nil) {
			if h.Date.After(d) {
				return h, true
			}
		}
	}
	return Holiday{}, false
}

// PreviousHoliday returns the most recent public holiday strictly before d.
// It returns false if there is none within the previous ten years of data.
func (c *Calendar) PreviousHoliday(d Date) (Holiday, bool) {
	for y := d.year; y >= d.year-holidaySearchYears; y-- {
		hs := collect(c.year(y).public, nil)
		for i := len(hs) - 1; i >= 0; i-- {
			if hs[i].Date.Before(d) {
				return hs[i], true
			}
		}
	}
	return Holiday{}, false
}

// HolidaysBetween returns the public holidays in the range [from, to]
// inclusive, sorted by date. If from is after to, it returns nil.
func (c *Calendar) HolidaysBetween(from, to Date) []Holiday {
	if to.Before(from) {
		return nil
	}
	var result []Holiday
	for y := from.year; y <= to.year; y++ {
		result = append(result, collect(c.year(y).public, func(d Date) bool {
			return d.inRange(from, to)
		})...)
	}
	return result
}

// collect returns the entries of m accepted by keep (all when keep is nil),
// sorted by date.
func collect(m map[Date]string, keep func(Date) bool) []Holiday {
	var result []Holiday
	for d, name := range m {
		if keep == nil || keep(d) {
			result = append(result, Holiday{Date: d, Name: name})
		}
	}
	sortHolidays(result)
	return result
}

// SupportedYears returns the years covered by the built-in dataset, in
// ascending order.
func SupportedYears() []int {
	seen := make(map[int]bool)
	for d := range builtinHolidays {
		seen[d.year] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
