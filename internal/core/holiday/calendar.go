// Package holiday builds per-year holiday calendars from a catalog of
// computation rules and store-defined custom holidays.
package holiday

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"sales-campaigns/internal/core/domain"
)

// DateLayout is the ISO calendar date format used for holiday dates.
const DateLayout = "2006-01-02"

// Holiday binds a catalog key to the rule that computes its date.
type Holiday struct {
	Key  string
	Rule Rule
}

var (
	spring       = SolarTerm{Month: time.March, Day: 20}
	summer       = SolarTerm{Month: time.June, Day: 21}
	autumn       = SolarTerm{Month: time.September, Day: 22}
	winter       = SolarTerm{Month: time.December, Day: 21}
	thanksgiving = NthWeekday{Month: time.November, Weekday: time.Thursday, N: 4}
)

// Catalog is the built-in list of holidays. Aliases are separate entries
// sharing a rule.
var Catalog = []Holiday{
	{"First_Day_of_Spring", spring},
	{"Vernal_Equinox", spring},
	{"First_Day_of_Summer", summer},
	{"Summer_Solstice", summer},
	{"First_Day_of_Autumn", autumn},
	{"Autumnal_Equinox", autumn},
	{"First_Day_of_Winter", winter},
	{"Winter_Solstice", winter},

	{"Chinese_New_Year", LunarNewYear{}},

	{"New_Years_Day", Fixed{time.January, 1}},
	{"Isshinryu_Birthday", Fixed{time.January, 15}},
	{"MLK_Day", NthWeekday{time.January, time.Monday, 3}},
	{"Groundhog_Day", Fixed{time.February, 2}},
	{"Valentines_Day", Fixed{time.February, 14}},
	{"Presidents_Day", NthWeekday{time.February, time.Monday, 3}},
	{"Saint_Patricks_Day", Fixed{time.March, 17}},
	{"April_Fools_Day", Fixed{time.April, 1}},
	{"Good_Friday", EasterOffset{Days: -2}},
	{"Easter_Day", EasterOffset{}},
	{"Pi_Day", Fixed{time.March, 14}},
	{"Earth_Day", Fixed{time.April, 22}},
	{"Star_Wars_Day", Fixed{time.May, 4}},
	{"Cinco_De_Mayo_Day", Fixed{time.May, 5}},
	{"Mothers_Day", NthWeekday{time.May, time.Sunday, 2}},
	{"Memorial_Day", NthWeekday{time.May, time.Monday, -1}},
	{"Fathers_Day", NthWeekday{time.June, time.Sunday, 3}},
	{"Canada_Day", Fixed{time.July, 1}},
	{"Independence_Day", Fixed{time.July, 4}},
	{"Labor_Day", NthWeekday{time.September, time.Monday, 1}},
	{"Halloween", Fixed{time.October, 31}},
	{"Thanksgiving", thanksgiving},
	{"Black_Friday", Relative{Base: thanksgiving, Days: 1}},
	{"Cyber_Monday", Relative{Base: thanksgiving, Days: 4}},
	{"Christmas_Eve", Fixed{time.December, 24}},
	{"Christmas_Day", Fixed{time.December, 25}},
	{"Boxing_Day", Fixed{time.December, 26}},
	{"New_Years_Eve", Fixed{time.December, 31}},
}

// Entry is a resolved holiday date.
type Entry struct {
	Key  string    `json:"key"`
	Date time.Time `json:"date"`
}

// ISODate formats the entry date as YYYY-MM-DD.
func (e Entry) ISODate() string {
	return e.Date.Format(DateLayout)
}

// Calendar maps holiday keys to dates for a single year. Entries are kept
// sorted by date, ties broken by key.
type Calendar struct {
	Year    int
	entries []Entry
	index   map[string]time.Time
}

// Lookup returns the date for key, or false when the key is unknown.
func (c *Calendar) Lookup(key string) (time.Time, bool) {
	d, ok := c.index[key]
	return d, ok
}

// Entries returns the calendar in date order. The slice must not be
// modified.
func (c *Calendar) Entries() []Entry {
	return c.entries
}

// Len returns the number of distinct keys.
func (c *Calendar) Len() int {
	return len(c.entries)
}

// CustomKey turns a custom holiday name into a catalog key by trimming it
// and collapsing whitespace runs into underscores.
func CustomKey(name string) string {
	return strings.Join(strings.Fields(name), "_")
}

// ForYear resolves the built-in catalog plus custom holidays for year.
// Custom entries overwrite built-ins with the same key; among custom
// entries the last one wins. Rows with an empty name, or a month or day
// that cannot name a date, are skipped.
func ForYear(year int, custom []domain.CustomHoliday) *Calendar {
	index := make(map[string]time.Time, len(Catalog)+len(custom))
	for _, h := range Catalog {
		index[h.Key] = h.Rule.DateIn(year)
	}
	for _, row := range custom {
		key := CustomKey(row.Name)
		if key == "" || row.Month < 1 || row.Month > 12 || row.Day < 1 {
			continue
		}
		index[key] = Fixed{Month: time.Month(row.Month), Day: row.Day}.DateIn(year)
	}

	entries := make([]Entry, 0, len(index))
	for key, date := range index {
		entries = append(entries, Entry{Key: key, Date: date})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})

	return &Calendar{Year: year, entries: entries, index: index}
}
