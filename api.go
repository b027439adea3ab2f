package krholiday

// Option configures the string API.
type Option func(*options)

type options struct {
	count   int
	pattern string
	cal     *Calendar
}

// WithCount selects the N-th matching day for the Next* and Previous*
// functions. The default is 1; zero or negative counts fail with
// [ErrInvalidCount]. Other functions ignore it.
func WithCount(n int) Option {
	return func(o *options) { o.count = n }
}

// WithFormat sets the format pattern used both to parse the input date and
// to render the result. The default is [DefaultLayout].
func WithFormat(pattern string) Option {
	return func(o *options) { o.pattern = pattern }
}

// WithCalendar answers the query from c instead of the built-in calendar.
func WithCalendar(c *Calendar) Option {
	return func(o *options) {
		if c != nil {
			o.cal = c
		}
	}
}

func resolve(opts []Option) options {
	o := options{count: 1, pattern: DefaultLayout, cal: defaultCal}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) parse(date string) (Layout, Date, error) {
	l, err := ParseLayout(o.pattern)
	if err != nil {
		return Layout{}, Date{}, err
	}
	d, err := l.Parse(date)
	if err != nil {
		return Layout{}, Date{}, err
	}
	return l, d, nil
}

// test parses date and applies a day predicate built from the options' calendar.
func test(date string, opts []Option, pred func(*Calendar) Predicate) (bool, error) {
	o := resolve(opts)
	_, d, err := o.parse(date)
	if err != nil {
		return false, err
	}
	return pred(o.cal)(d), nil
}

type searchFunc func(start Date, p Predicate, count int) (Date, error)

// search parses date, runs find with the day predicate and renders the
// result in the same format.
func search(date string, opts []Option, find searchFunc, pred func(*Calendar) Predicate) (string, error) {
	o := resolve(opts)
	if o.count <= 0 {
		return "", ErrInvalidCount
	}
	l, d, err := o.parse(date)
	if err != nil {
		return "", err
	}
	got, err := find(d, pred(o.cal), o.count)
	if err != nil {
		return "", err
	}
	return l.Format(got), nil
}

func findLast(start Date, p Predicate, _ int) (Date, error) {
	if d := FindLast(start, p); !d.IsZero() {
		return d, nil
	}
	return Date{}, ErrOutOfRange
}

func businessDay(c *Calendar) Predicate { return c.IsBusinessDay }
func tradingDay(c *Calendar) Predicate { return c.IsTradingDay }

// IsBusinessDay reports whether date is a business day (neither a weekend
// nor a public holiday).
func IsBusinessDay(date string, opts ...Option) (bool, error) {
	return test(date, opts, businessDay)
}

// IsTradingDay reports whether the Korea Exchange is open on date.
func IsTradingDay(date string, opts ...Option) (bool, error) {
	return test(date, opts, tradingDay)
}

// IsHoliday reports whether date is a public holiday. Dates in years without
// holiday data are never holidays.
func IsHoliday(date string, opts ...Option) (bool, error) {
	return test(date, opts, func(c *Calendar) Predicate { return c.IsHoliday })
}

// IsTradingHoliday reports whether the Korea Exchange is closed on date for
// a holiday, including exchange-only closures.
func IsTradingHoliday(date string, opts ...Option) (bool, error) {
	return test(date, opts, func(c *Calendar) Predicate { return c.IsTradingHoliday })
}

// IsWeekendDay reports whether date falls on a Saturday or Sunday.
func IsWeekendDay(date string, opts ...Option) (bool, error) {
	return test(date, opts, func(*Calendar) Predicate { return IsWeekend })
}

// HolidayName returns the name of the public holiday on date, or "".
func HolidayName(date string, opts ...Option) (string, error) {
	o := resolve(opts)
	_, d, err := o.parse(date)
	if err != nil {
		return "", err
	}
	return o.cal.HolidayName(d), nil
}

// Normalize re-renders date, given in the WithFormat pattern, in ISO form.
func Normalize(date string, opts ...Option) (string, error) {
	_, d, err := resolve(opts).parse(date)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// NextBusinessDay returns the N-th business day after date (see [WithCount]).
func NextBusinessDay(date string, opts ...Option) (string, error) {
	return search(date, opts, FindNext, businessDay)
}

// PreviousBusinessDay returns the N-th business day before date.
func PreviousBusinessDay(date string, opts ...Option) (string, error) {
	return search(date, opts, FindPrevious, businessDay)
}

// LastBusinessDay returns date itself if it is a business day, and otherwise
// the most recent business day before it. WithCount is ignored.
func LastBusinessDay(date string, opts ...Option) (string, error) {
	return search(date, append(opts[:len(opts):len(opts)], WithCount(1)), findLast, businessDay)
}

// NextTradingDay returns the N-th trading day after date.
func NextTradingDay(date string, opts ...Option) (string, error) {
	return search(date, opts, FindNext, tradingDay)
}

// PreviousTradingDay returns the N-th trading day before date.
func PreviousTradingDay(date string, opts ...Option) (string, error) {
	return search(date, opts, FindPrevious, tradingDay)
}

// LastTradingDay returns date itself if it is a trading day, and otherwise
// the most recent trading day before it. WithCount is ignored.
func LastTradingDay(date string, opts ...Option) (string, error) {
	return search(date, append(opts[:len(opts):len(opts)], WithCount(1)), findLast, tradingDay)
}
