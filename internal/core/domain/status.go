package domain

import "time"

// CampaignStatus is the derived state of a campaign at a given instant.
type CampaignStatus string

const (
	StatusUnscheduled CampaignStatus = "unscheduled"
	StatusScheduled   CampaignStatus = "scheduled"
	StatusRunning     CampaignStatus = "running"
	StatusEnded       CampaignStatus = "ended"
)

// ClassifyStatus derives a campaign's status. A manual override wins over
// the window; ok reports whether a window could be resolved at all.
func ClassifyStatus(override StatusOverride, w Window, ok bool, now time.Time) CampaignStatus {
	switch override {
	case OverrideRunning:
		return StatusRunning
	case OverrideEnded:
		return StatusEnded
	}
	if !ok {
		return StatusUnscheduled
	}
	if now.Before(w.Start) {
		return StatusScheduled
	}
	if now.After(w.End) {
		return StatusEnded
	}
	return StatusRunning
}
