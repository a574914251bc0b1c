package holiday

import "time"

// Rule computes the date of a holiday in a given year. Returned dates are
// midnight UTC and only their calendar fields are meaningful.
type Rule interface {
	DateIn(year int) time.Time
}

// Fixed is a holiday on the same month and day every year. Days past the end
// of the month are clamped to the last day.
type Fixed struct {
	Month time.Month
	Day   int
}

func (r Fixed) DateIn(year int) time.Time {
	return ClampedDate(year, r.Month, r.Day)
}

// SolarTerm approximates an equinox or solstice with a constant month/day.
type SolarTerm struct {
	Month time.Month
	Day   int
}

func (r SolarTerm) DateIn(year int) time.Time {
	return ClampedDate(year, r.Month, r.Day)
}

// NthWeekday is the Nth occurrence of a weekday in a month, e.g. the fourth
// Thursday of November. N = -1 selects the last occurrence.
type NthWeekday struct {
	Month   time.Month
	Weekday time.Weekday
	N       int
}

func (r NthWeekday) DateIn(year int) time.Time {
	if r.N < 0 {
		last := time.Date(year, r.Month+1, 0, 0, 0, 0, 0, time.UTC)
		back := (int(last.Weekday()) - int(r.Weekday) + 7) % 7
		return last.AddDate(0, 0, -back)
	}
	first := time.Date(year, r.Month, 1, 0, 0, 0, 0, time.UTC)
	ahead := (int(r.Weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, ahead+7*(r.N-1))
}

// EasterOffset is a holiday a number of days from Western Easter Sunday.
type EasterOffset struct {
	Days int
}

func (r EasterOffset) DateIn(year int) time.Time {
	return Easter(year).AddDate(0, 0, r.Days)
}

// Relative is a holiday a number of days after another rule's date.
type Relative struct {
	Base Rule
	Days int
}

func (r Relative) DateIn(year int) time.Time {
	return r.Base.DateIn(year).AddDate(0, 0, r.Days)
}

// LunarNewYear looks the Chinese New Year up in a table of known dates and
// falls back to February 4 for years outside the table.
type LunarNewYear struct{}

var lunarNewYear = map[int]struct {
	month time.Month
	day   int
}{
	2020: {time.January, 25},
	2021: {time.February, 12},
	2022: {time.February, 1},
	2023: {time.January, 22},
	2024: {time.February, 10},
	2025: {time.January, 29},
	2026: {time.February, 17},
	2027: {time.February, 6},
	2028: {time.January, 26},
	2029: {time.February, 13},
	2030: {time.February, 3},
}

func (LunarNewYear) DateIn(year int) time.Time {
	if d, ok := lunarNewYear[year]; ok {
		return time.Date(year, d.month, d.day, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, time.February, 4, 0, 0, 0, 0, time.UTC)
}

// Easter returns Western Easter Sunday using the anonymous Gregorian
// computus.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ClampedDate builds a UTC midnight date, clamping day to the last day of
// the month (Feb 29 becomes Feb 28 in common years).
func ClampedDate(year int, month time.Month, day int) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
