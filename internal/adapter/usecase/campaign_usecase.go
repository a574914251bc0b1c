package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"sales-campaigns/internal/core/domain"
	"sales-campaigns/internal/core/holiday"
	"sales-campaigns/internal/core/port"
)

// Settings configures how campaigns are evaluated and described.
type Settings struct {
	// Location is the time zone campaign dates are interpreted in.
	Location *time.Location
	Language language.Tag
	Currency currency.Unit
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// CampaignUseCase implements port.CampaignUseCase. It holds only immutable
// collaborators and is safe for concurrent use; every operation opens its
// own Evaluation.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	products  port.ProductRepository
	clock     port.Clock
	loc       *time.Location
	labels    *LabelFormatter
	logger    *slog.Logger
}

// NewCampaignUseCase creates a new usecase with the provided repositories
// and clock. Zero settings fall back to UTC, English and US dollars.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	products port.ProductRepository,
	clock port.Clock,
	settings Settings,
	logger *slog.Logger,
) *CampaignUseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.Language == language.Und {
		settings.Language = language.AmericanEnglish
	}
	if settings.Currency == (currency.Unit{}) {
		settings.Currency = currency.USD
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CampaignUseCase{
		campaigns: campaigns,
		products:  products,
		clock:     clock,
		loc:       settings.Location,
		labels:    NewLabelFormatter(settings.Language, settings.Currency),
		logger:    logger,
	}
}

// Open loads a campaign and holiday snapshot and returns a fresh
// evaluation context pinned to the current instant.
func (u *CampaignUseCase) Open(ctx context.Context) (*Evaluation, error) {
	campaigns, err := u.campaigns.ListPublishedCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	custom, err := u.campaigns.ListCustomHolidays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom holidays: %w", err)
	}
	e := NewEvaluation(uuid.NewString(), u.clock.Now(), u.loc, campaigns, custom)
	u.logger.DebugContext(ctx, "evaluation opened",
		slog.String("evaluation_id", e.ID),
		slog.Time("now", e.Now()),
		slog.Int("campaigns", len(campaigns)),
	)
	return e, nil
}

// ListCampaigns returns an overview of every published campaign.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]port.CampaignOverview, error) {
	e, err := u.Open(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]port.CampaignOverview, 0, len(e.Campaigns()))
	for _, c := range e.Campaigns() {
		out = append(out, u.overview(e, c))
	}
	return out, nil
}

// GetCampaign returns the overview of one campaign.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id int64) (*port.CampaignOverview, error) {
	e, err := u.Open(ctx)
	if err != nil {
		return nil, err
	}
	c, ok := e.Campaign(id)
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	ov := u.overview(e, c)
	return &ov, nil
}

// RunningCampaigns returns the ids of running campaigns.
func (u *CampaignUseCase) RunningCampaigns(ctx context.Context) ([]int64, error) {
	e, err := u.Open(ctx)
	if err != nil {
		return nil, err
	}
	return e.RunningCampaigns(), nil
}

// QuoteProduct prices a single product.
func (u *CampaignUseCase) QuoteProduct(ctx context.Context, productID int64) (*port.ProductQuote, error) {
	p, err := u.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, port.ErrProductNotFound
	}
	e, err := u.Open(ctx)
	if err != nil {
		return nil, err
	}
	q := quote(e, *p)
	return &q, nil
}

// QuoteProducts prices several products in one evaluation context.
func (u *CampaignUseCase) QuoteProducts(ctx context.Context, productIDs []int64) ([]port.ProductQuote, error) {
	if len(productIDs) == 0 {
		return []port.ProductQuote{}, nil
	}
	products, err := u.products.ListProducts(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	e, err := u.Open(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]port.ProductQuote, 0, len(products))
	for _, p := range products {
		out = append(out, quote(e, p))
	}
	return out, nil
}

// StoreNotice overlays the active notice campaign on the global notice.
func (u *CampaignUseCase) StoreNotice(ctx context.Context, global port.StoreNotice) (port.StoreNotice, error) {
	e, err := u.Open(ctx)
	if err != nil {
		return global, err
	}
	return e.ApplyStoreNotice(global), nil
}

// Holidays returns the calendar for year. A non-positive year means the
// current year in the configured location.
func (u *CampaignUseCase) Holidays(ctx context.Context, year int) ([]holiday.Entry, error) {
	if year <= 0 {
		year = u.clock.Now().In(u.loc).Year()
	}
	custom, err := u.campaigns.ListCustomHolidays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom holidays: %w", err)
	}
	return holiday.ForYear(year, custom).Entries(), nil
}

// SaveCustomHolidays sanitizes rows and replaces the stored custom
// holidays with the result.
func (u *CampaignUseCase) SaveCustomHolidays(ctx context.Context, rows []domain.CustomHolidayInput) ([]domain.CustomHoliday, error) {
	clean := domain.SanitizeCustomHolidays(rows)
	if err := u.campaigns.ReplaceCustomHolidays(ctx, clean); err != nil {
		return nil, fmt.Errorf("replace custom holidays: %w", err)
	}
	u.logger.InfoContext(ctx, "custom holidays saved",
		slog.Int("submitted", len(rows)),
		slog.Int("kept", len(clean)),
	)
	return clean, nil
}

func (u *CampaignUseCase) overview(e *Evaluation, c domain.Campaign) port.CampaignOverview {
	ov := port.CampaignOverview{
		ID:            c.ID,
		Title:         c.Title,
		DateMode:      c.DateMode,
		Status:        e.Status(c.ID),
		DiscountLabel: u.labels.Discount(c),
		FreeShipping:  c.FreeShipping,
		StoreNotice:   c.StoreNoticeEnabled,
	}
	if ov.DateMode != domain.DateModeHoliday {
		ov.DateMode = domain.DateModeFixed
	}
	if w, ok := e.Window(c.ID); ok {
		ov.WindowStart, ov.WindowEnd = &w.Start, &w.End
	}
	return ov
}

func quote(e *Evaluation, p domain.Product) port.ProductQuote {
	q := port.ProductQuote{
		ProductID:    p.ID,
		OnSale:       e.IsOnSale(p),
		FreeShipping: e.FreeShipping(p),
	}
	if p.RegularPrice.Valid {
		regular := p.RegularPrice.Decimal
		q.RegularPrice = &regular
	}
	if price, ok := e.EffectivePrice(p); ok {
		q.EffectivePrice = &price
	}
	if s, ok := e.Savings(p); ok {
		q.Savings = &port.SavingsView{
			Amount:  s.Amount.Round(2),
			Percent: s.Percent.Round(0),
		}
	}
	if end, ok := e.CountdownTarget(p); ok {
		q.CountdownTarget = &end
	}
	return q
}
