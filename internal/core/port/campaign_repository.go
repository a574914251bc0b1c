package port

import (
	"context"
	"errors"
	"time"

	"sales-campaigns/internal/core/domain"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrProductNotFound  = errors.New("product not found")
)

// CampaignRepository defines the storage of campaigns and store-defined
// holidays. It is an outbound port in hexagonal architecture.
// Implementations must be safe for concurrent use.
type CampaignRepository interface {
	// ListPublishedCampaigns returns every published campaign ordered by
	// ascending id.
	ListPublishedCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// ListCustomHolidays returns custom holidays in the order they were
	// saved.
	ListCustomHolidays(ctx context.Context) ([]domain.CustomHoliday, error)
	// ReplaceCustomHolidays atomically replaces the stored custom holidays.
	ReplaceCustomHolidays(ctx context.Context, holidays []domain.CustomHoliday) error
}

// ProductRepository provides product snapshots.
type ProductRepository interface {
	// GetProduct returns the product with the given id or
	// ErrProductNotFound.
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	// ListProducts returns the products among ids that exist, ordered by id.
	ListProducts(ctx context.Context, ids []int64) ([]domain.Product, error)
}

// Clock supplies the current instant once per evaluation.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function such as time.Now to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
