package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-campaigns/internal/core/domain"
	"sales-campaigns/internal/core/holiday"
)

func utcResolver() Resolver {
	return NewResolver(time.UTC, CalendarFunc(func(year int) *holiday.Calendar {
		return holiday.ForYear(year, nil)
	}))
}

func fixedCampaign(start, end string, rec domain.Recurrence) domain.Campaign {
	c := domain.NewCampaign(1)
	c.StartDate = start
	c.EndDate = end
	c.Recurrence = rec
	return c
}

func holidayCampaign(key string, offset, duration int) domain.Campaign {
	c := domain.NewCampaign(2)
	c.DateMode = domain.DateModeHoliday
	c.HolidayKey = key
	c.HolidayOffset = offset
	c.HolidayDuration = duration
	return c
}

func TestFixedWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	w, ok := utcResolver().Resolve(fixedCampaign("2025-06-01", "2025-06-10", domain.RecurrenceNone), now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC), w.End)
}

func TestFixedWindowYearlyRecurrence(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	w, ok := utcResolver().Resolve(fixedCampaign("2023-06-01", "2023-06-10", domain.RecurrenceYearly), now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC), w.End)
}

func TestFixedWindowYearlyLeapDayClamps(t *testing.T) {
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	w, ok := utcResolver().Resolve(fixedCampaign("2024-02-20", "2024-02-29", domain.RecurrenceYearly), now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC), w.End)
}

func TestFixedWindowYearlyCrossingYearEndIsInvalid(t *testing.T) {
	now := time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC)

	_, ok := utcResolver().Resolve(fixedCampaign("2024-12-20", "2025-01-05", domain.RecurrenceYearly), now)
	assert.False(t, ok)
}

func TestFixedWindowInvalidInput(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	r := utcResolver()

	tests := []struct {
		name       string
		start, end string
	}{
		{"empty start", "", "2025-06-10"},
		{"empty end", "2025-06-01", ""},
		{"garbage", "next tuesday", "2025-06-10"},
		{"impossible date", "2025-02-30", "2025-03-10"},
		{"end before start", "2025-06-10", "2025-06-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := r.Resolve(fixedCampaign(tt.start, tt.end, domain.RecurrenceNone), now)
			assert.False(t, ok)
		})
	}
}

func TestFixedWindowSameDay(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	w, ok := utcResolver().Resolve(fixedCampaign("2025-06-01", "2025-06-01", domain.RecurrenceNone), now)
	require.True(t, ok)
	assert.Equal(t, 24*time.Hour-time.Second, w.End.Sub(w.Start))
}

func TestHolidayWindow(t *testing.T) {
	now := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	w, ok := utcResolver().Resolve(holidayCampaign("Christmas_Day", -3, 5), now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 12, 26, 23, 59, 59, 0, time.UTC), w.End)
}

func TestHolidayWindowDurationClamped(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, d := range []int{0, -4} {
		w, ok := utcResolver().Resolve(holidayCampaign("Black_Friday", 0, d), now)
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC), w.Start)
		assert.Equal(t, time.Date(2025, 11, 28, 23, 59, 59, 0, time.UTC), w.End)
	}
}

func TestHolidayWindowPositiveOffsetCrossesYear(t *testing.T) {
	now := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	w, ok := utcResolver().Resolve(holidayCampaign("New_Years_Eve", 1, 2), now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 1, 2, 23, 59, 59, 0, time.UTC), w.End)
}

func TestHolidayWindowUnknownKey(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, ok := utcResolver().Resolve(holidayCampaign("Festivus", 0, 1), now)
	assert.False(t, ok)
	_, ok = utcResolver().Resolve(holidayCampaign("", 0, 1), now)
	assert.False(t, ok)
}

func TestHolidayWindowUsesCustomCalendar(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := NewResolver(time.UTC, CalendarFunc(func(year int) *holiday.Calendar {
		return holiday.ForYear(year, []domain.CustomHoliday{{Name: "Store Birthday", Month: 8, Day: 15}})
	}))

	w, ok := r.Resolve(holidayCampaign("Store_Birthday", 0, 3), now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 8, 17, 23, 59, 59, 0, time.UTC), w.End)
}

func TestResolverLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	r := NewResolver(loc, nil)
	// 2025-12-31 22:00 in UTC-5 is already 2026 in UTC; the location decides the year.
	now := time.Date(2026, 1, 1, 3, 0, 0, 0, time.UTC)

	w, ok := r.Resolve(fixedCampaign("2020-12-01", "2020-12-31", domain.RecurrenceYearly), now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 12, 1, 5, 0, 0, 0, time.UTC), w.Start.UTC())
	assert.Equal(t, 2025, w.End.Year())

	_, ok = r.Resolve(holidayCampaign("Christmas_Day", 0, 1), now)
	assert.False(t, ok, "holiday windows need a calendar source")
}
