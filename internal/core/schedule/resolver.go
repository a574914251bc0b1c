// Package schedule turns a campaign's date configuration into a concrete
// window of instants.
package schedule

import (
	"time"

	"sales-campaigns/internal/core/domain"
	"sales-campaigns/internal/core/holiday"
)

// CalendarSource returns the holiday calendar for a year.
type CalendarSource interface {
	Calendar(year int) *holiday.Calendar
}

// CalendarFunc adapts a function to CalendarSource.
type CalendarFunc func(year int) *holiday.Calendar

func (f CalendarFunc) Calendar(year int) *holiday.Calendar { return f(year) }

// Resolver computes campaign windows in a single canonical location.
type Resolver struct {
	Location  *time.Location
	Calendars CalendarSource
}

// NewResolver returns a resolver for loc. A nil loc means UTC.
func NewResolver(loc *time.Location, calendars CalendarSource) Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return Resolver{Location: loc, Calendars: calendars}
}

// Resolve returns the campaign's window relative to now. The second return
// value is false when the configuration does not describe a valid window.
func (r Resolver) Resolve(c domain.Campaign, now time.Time) (domain.Window, bool) {
	var (
		w  domain.Window
		ok bool
	)
	if c.DateMode == domain.DateModeHoliday {
		w, ok = r.holidayWindow(c, now)
	} else {
		w, ok = r.fixedWindow(c, now)
	}
	if !ok || !w.Valid() {
		return domain.Window{}, false
	}
	return w, true
}

func (r Resolver) fixedWindow(c domain.Campaign, now time.Time) (domain.Window, bool) {
	if c.StartDate == "" || c.EndDate == "" {
		return domain.Window{}, false
	}
	start, err := time.ParseInLocation(holiday.DateLayout, c.StartDate, r.Location)
	if err != nil {
		return domain.Window{}, false
	}
	end, err := time.ParseInLocation(holiday.DateLayout, c.EndDate, r.Location)
	if err != nil {
		return domain.Window{}, false
	}

	if c.Recurrence == domain.RecurrenceYearly {
		year := now.In(r.Location).Year()
		start = holiday.ClampedDate(year, start.Month(), start.Day())
		end = holiday.ClampedDate(year, end.Month(), end.Day())
	}
	return domain.Window{
		Start: r.startOfDay(start),
		End:   r.endOfDay(end),
	}, true
}

func (r Resolver) holidayWindow(c domain.Campaign, now time.Time) (domain.Window, bool) {
	if c.HolidayKey == "" || r.Calendars == nil {
		return domain.Window{}, false
	}
	cal := r.Calendars.Calendar(now.In(r.Location).Year())
	if cal == nil {
		return domain.Window{}, false
	}
	anchor, ok := cal.Lookup(c.HolidayKey)
	if !ok {
		return domain.Window{}, false
	}

	duration := max(c.HolidayDuration, 1)
	first := anchor.AddDate(0, 0, c.HolidayOffset)
	last := first.AddDate(0, 0, duration-1)
	return domain.Window{
		Start: r.startOfDay(first),
		End:   r.endOfDay(last),
	}, true
}

// startOfDay and endOfDay read only the calendar fields of d, so dates
// built in UTC and dates parsed in r.Location both work.
func (r Resolver) startOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, r.Location)
}

func (r Resolver) endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, r.Location)
}
