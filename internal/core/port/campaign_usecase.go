package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sales-campaigns/internal/core/domain"
	"sales-campaigns/internal/core/holiday"
)

// CampaignUseCase defines the request-scoped operations exposed by the
// campaign engine. Every call evaluates campaigns in a fresh evaluation
// context, so results never depend on an earlier call.
type CampaignUseCase interface {
	// ListCampaigns returns an overview of every published campaign with
	// its computed status and window.
	ListCampaigns(ctx context.Context) ([]CampaignOverview, error)

	// GetCampaign returns the overview of a single campaign or
	// ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id int64) (*CampaignOverview, error)

	// RunningCampaigns returns the ids of running campaigns in ascending
	// order.
	RunningCampaigns(ctx context.Context) ([]int64, error)

	// QuoteProduct prices a single product or returns ErrProductNotFound.
	QuoteProduct(ctx context.Context, productID int64) (*ProductQuote, error)

	// QuoteProducts prices several products within one evaluation. Unknown
	// ids are skipped.
	QuoteProducts(ctx context.Context, productIDs []int64) ([]ProductQuote, error)

	// StoreNotice applies the active notice campaign, if any, on top of the
	// globally configured notice.
	StoreNotice(ctx context.Context, global StoreNotice) (StoreNotice, error)

	// Holidays returns the resolved holiday calendar for year.
	Holidays(ctx context.Context, year int) ([]holiday.Entry, error)

	// SaveCustomHolidays sanitizes and stores custom holidays, returning the
	// rows that were kept.
	SaveCustomHolidays(ctx context.Context, rows []domain.CustomHolidayInput) ([]domain.CustomHoliday, error)
}

// CampaignOverview is a DTO summarising a campaign for administrators.
type CampaignOverview struct {
	ID            int64                 `json:"id"`
	Title         string                `json:"title"`
	DateMode      domain.DateMode       `json:"date_mode"`
	Status        domain.CampaignStatus `json:"status"`
	WindowStart   *time.Time            `json:"window_start,omitempty"`
	WindowEnd     *time.Time            `json:"window_end,omitempty"`
	DiscountLabel string                `json:"discount_label"`
	FreeShipping  bool                  `json:"free_shipping"`
	StoreNotice   bool                  `json:"store_notice"`
}

// ProductQuote is the priced view of a product at evaluation time.
// Savings is nil when the product is not discounted by a campaign.
type ProductQuote struct {
	ProductID       int64            `json:"product_id"`
	RegularPrice    *decimal.Decimal `json:"regular_price,omitempty"`
	EffectivePrice  *decimal.Decimal `json:"effective_price,omitempty"`
	OnSale          bool             `json:"on_sale"`
	Savings         *SavingsView     `json:"savings,omitempty"`
	CountdownTarget *time.Time       `json:"countdown_target,omitempty"`
	FreeShipping    bool             `json:"free_shipping"`
}

// SavingsView is the savings summary with the percentage rounded for
// display.
type SavingsView struct {
	Amount  decimal.Decimal `json:"amount"`
	Percent decimal.Decimal `json:"percent"`
}

// StoreNotice is the storefront notice configuration.
type StoreNotice struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
}
