package krholiday

import "time"

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessDay reports whether d is a business day (neither a weekend nor
// a public holiday).
func (c *Calendar) IsBusinessDay(d Date) bool {
	return !IsWeekend(d) && !c.IsHoliday(d)
}

// IsTradingDay reports whether the Korea Exchange is open on d (neither a
// weekend nor a trading holiday).
func (c *Calendar) IsTradingDay(d Date) bool {
	return !IsWeekend(d) && !c.IsTradingHoliday(d)
}

// NextBusinessDay returns the count-th business day strictly after d.
func (c *Calendar) NextBusinessDay(d Date, count int) (Date, error) {
	return FindNext(d, c.IsBusinessDay, count)
}

// PreviousBusinessDay returns the count-th business day strictly before d.
func (c *Calendar) PreviousBusinessDay(d Date, count int) (Date, error) {
	return FindPrevious(d, c.IsBusinessDay, count)
}

// LastBusinessDay returns d if it is a business day, and otherwise the most
// recent business day before it. See [FindLast] for the zero result.
func (c *Calendar) LastBusinessDay(d Date) Date {
	return FindLast(d, c.IsBusinessDay)
}

// NextTradingDay returns the count-th trading day strictly after d.
func (c *Calendar) NextTradingDay(d Date, count int) (Date, error) {
	return FindNext(d, c.IsTradingDay, count)
}

// PreviousTradingDay returns the count-th trading day strictly before d.
func (c *Calendar) PreviousTradingDay(d Date, count int) (Date, error) {
	return FindPrevious(d, c.IsTradingDay, count)
}

// LastTradingDay returns d if it is a trading day, and otherwise the most
// recent trading day before it. See [FindLast] for the zero result.
func (c *Calendar) LastTradingDay(d Date) Date {
	return FindLast(d, c.IsTradingDay)
}

// BusinessDaysBetween returns the count of business days in the range
// [from, to] inclusive. If from is after to, it returns 0.
func (c *Calendar) BusinessDaysBetween(from, to Date) int {
	return countBetween(from, to, c.IsBusinessDay)
}

// TradingDaysBetween returns the count of trading days in the range
// [from, to] inclusive. If from is after to, it returns 0.
func (c *Calendar) TradingDaysBetween(from, to Date) int {
	return countBetween(from, to, c.IsTradingDay)
}

func countBetween(from, to Date, p Predicate) int {
	count := 0
	for cur := from; !cur.After(to); cur = cur.AddDays(1) {
		if p(cur) {
			count++
		}
	}
	return count
}
