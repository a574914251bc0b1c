package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateMode selects how a campaign's window is computed.
type DateMode string

const (
	DateModeFixed   DateMode = "fixed"
	DateModeHoliday DateMode = "holiday"
)

// Recurrence controls whether a fixed range repeats every year.
type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceYearly Recurrence = "yearly"
)

// StatusOverride is a manual status set by an administrator. The empty value
// means no override.
type StatusOverride string

const (
	OverrideNone    StatusOverride = ""
	OverrideRunning StatusOverride = "running"
	OverrideEnded   StatusOverride = "ended"
)

// DiscountType is either a percentage or a flat amount off the regular price.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountAmount  DiscountType = "amount"
)

// Campaign represents a time-bounded, targeted sales campaign.
// Dates are stored as calendar dates (YYYY-MM-DD) and resolved into
// instants by the schedule package.
type Campaign struct {
	ID    int64
	Title string

	DateMode   DateMode
	StartDate  string
	EndDate    string
	Recurrence Recurrence

	HolidayKey      string
	HolidayOffset   int // days, may be negative
	HolidayDuration int // days, clamped to at least 1

	StatusOverride StatusOverride

	DiscountType     DiscountType
	DiscountValue    decimal.Decimal
	ApplyToSaleItems bool
	ShowCountdown    bool
	FreeShipping     bool // exposed to shipping integrations, not enforced here

	Targeting Targeting

	StoreNoticeEnabled bool
	StoreNoticeMessage string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCampaign returns a campaign populated with the defaults an unsaved
// campaign form starts with.
func NewCampaign(id int64) Campaign {
	return Campaign{
		ID:              id,
		DateMode:        DateModeFixed,
		Recurrence:      RecurrenceNone,
		HolidayDuration: 1,
		DiscountType:    DiscountPercent,
		ShowCountdown:   true,
	}
}

// CandidatePrice applies the campaign's discount to base. The second return
// value is false when the campaign carries no usable discount. The result is
// never negative.
func (c Campaign) CandidatePrice(base decimal.Decimal) (decimal.Decimal, bool) {
	if !c.DiscountValue.IsPositive() {
		return base, false
	}
	var candidate decimal.Decimal
	if c.DiscountType == DiscountPercent {
		factor := decimal.NewFromInt(1).Sub(c.DiscountValue.Div(decimal.NewFromInt(100)))
		candidate = base.Mul(factor)
	} else {
		candidate = base.Sub(c.DiscountValue)
	}
	if candidate.IsNegative() {
		candidate = decimal.Zero
	}
	return candidate, true
}
