package krholiday

import (
	"fmt"
	"sort"
	"strconv"
)

// Holiday represents a single public holiday or exchange closure.
type Holiday struct {
	Date Date   // The KST calendar date of the holiday.
	Name string // The Korean name of the holiday (e.g. "신정").
}

// Source supplies raw holiday data for a year. A Calendar asks a Source for
// each year at most once and never mutates what it returns. A year the
// source knows nothing about must yield nil slices, not an error.
type Source interface {
	// PublicHolidays returns the public holidays (공휴일) of the year.
	PublicHolidays(year int) []Holiday
	// ExchangeClosures returns the days the Korea Exchange is closed in the
	// year. Public holidays may be omitted; they are always treated as
	// closures.
	ExchangeClosures(year int) []Holiday
}

// builtinSource serves the generated tables in holidays_data.go.
type builtinSource struct{}

func (builtinSource) PublicHolidays(year int) []Holiday {
	return holidaysOfYear(builtinHolidays, year)
}

func (builtinSource) ExchangeClosures(year int) []Holiday {
	return holidaysOfYear(builtinClosures, year)
}

func holidaysOfYear(m map[Date]string, year int) []Holiday {
	var out []Holiday
	for d, name := range m {
		if d.year == year {
			out = append(out, Holiday{Date: d, Name: name})
		}
	}
	sortHolidays(out)
	return out
}

func sortHolidays(hs []Holiday) {
	sort.Slice(hs, func(i, j int) bool {
		return hs[i].Date.Before(hs[j].Date)
	})
}

// Table is the plain holiday lookup format: a mapping from a 4-digit year
// string to ISO (yyyy-MM-dd) date strings. TradingHolidays lists exchange
// closures; public holidays are added to it automatically, so it only needs
// the exchange-specific days such as the year-end closure.
type Table struct {
	Holidays        map[string][]string `json:"holidays" yaml:"holidays"`
	TradingHolidays map[string][]string `json:"trading_holidays" yaml:"trading_holidays"`
}

// tableSource is a Source backed by a validated Table.
type tableSource struct {
	public  map[int][]Holiday
	closure map[int][]Holiday
}

func (s *tableSource) PublicHolidays(year int) []Holiday   { return s.public[year] }
func (s *tableSource) ExchangeClosures(year int) []Holiday { return s.closure[year] }

// FromTable builds a Calendar from a Table. Every key must be a 4-digit
// year and every date must be an ISO date inside that year. Public holidays
// are named "공휴일" and exchange closures "휴장일".
func FromTable(t Table) (*Calendar, error) {
	public, err := indexTable(t.Holidays, tablePublicName)
	if err != nil {
		return nil, fmt.Errorf("holidays: %w", err)
	}
	closure, err := indexTable(t.TradingHolidays, tableClosureName)
	if err != nil {
		return nil, fmt.Errorf("trading holidays: %w", err)
	}
	return New(&tableSource{public: public, closure: closure}), nil
}

// Names given to Table entries, which carry dates only.
const (
	tablePublicName  = "공휴일"
	tableClosureName = "휴장일"
)

func indexTable(m map[string][]string, name string) (map[int][]Holiday, error) {
	iso := MustLayout(DefaultLayout)
	out := make(map[int][]Holiday, len(m))
	for key, dates := range m {
		year, err := strconv.Atoi(key)
		if len(key) != 4 || err != nil {
			return nil, fmt.Errorf("year key %q is not a 4-digit year", key)
		}
		hs := make([]Holiday, 0, len(dates))
		for _, s := range dates {
			d, err := iso.Parse(s)
			if err != nil {
				return nil, err
			}
			if d.year != year {
				return nil, fmt.Errorf("date %s listed under year %s", s, key)
			}
			hs = append(hs, Holiday{Date: d, Name: name})
		}
		sortHolidays(hs)
		out[year] = hs
	}
	return out, nil
}
