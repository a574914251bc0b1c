package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	w := Window{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC),
	}
	before := time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)
	inside := time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)
	after := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		override StatusOverride
		ok       bool
		now      time.Time
		want     CampaignStatus
	}{
		{"before start", OverrideNone, true, before, StatusScheduled},
		{"at start", OverrideNone, true, w.Start, StatusRunning},
		{"inside", OverrideNone, true, inside, StatusRunning},
		{"at end", OverrideNone, true, w.End, StatusRunning},
		{"after end", OverrideNone, true, after, StatusEnded},
		{"no window", OverrideNone, false, inside, StatusUnscheduled},
		{"forced running far outside", OverrideRunning, true, after.AddDate(3, 0, 0), StatusRunning},
		{"forced running without window", OverrideRunning, false, inside, StatusRunning},
		{"forced ended inside", OverrideEnded, true, inside, StatusEnded},
		{"forced ended without window", OverrideEnded, false, inside, StatusEnded},
		{"unknown override ignored", StatusOverride("paused"), true, inside, StatusRunning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.override, w, tt.ok, tt.now))
		})
	}
}

func TestWindowValid(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, Window{Start: start, End: start}.Valid())
	assert.True(t, Window{Start: start, End: start.Add(time.Hour)}.Valid())
	assert.False(t, Window{Start: start, End: start.Add(-time.Second)}.Valid())
	assert.False(t, Window{Start: start}.Valid())
	assert.False(t, Window{End: start}.Valid())
}
