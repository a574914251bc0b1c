package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"sales-campaigns/internal/core/domain"
	"sales-campaigns/internal/core/port"
)

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListPublishedCampaigns returns every published campaign with its
// targeting, ordered by ascending id.
func (r *CampaignRepository) ListPublishedCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	query := `
        SELECT
            c.id,
            c.title,
            c.date_mode,
            c.start_date,
            c.end_date,
            c.recurrence,
            c.holiday_key,
            c.holiday_offset,
            c.holiday_duration,
            c.status_override,
            c.discount_type,
            c.discount_value::text,
            c.apply_to_sale_items,
            c.show_countdown,
            c.free_shipping,
            c.store_notice_enabled,
            c.store_notice_message,
            c.created_at,
            c.updated_at,
            COALESCE(t.data, '{}'::jsonb)
        FROM campaigns c
        LEFT JOIN campaign_targeting t ON t.campaign_id = c.id
        WHERE c.status = 'publish'
        ORDER BY c.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	return campaigns, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c            domain.Campaign
		value        string
		targetingRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.DateMode,
		&c.StartDate,
		&c.EndDate,
		&c.Recurrence,
		&c.HolidayKey,
		&c.HolidayOffset,
		&c.HolidayDuration,
		&c.StatusOverride,
		&c.DiscountType,
		&value,
		&c.ApplyToSaleItems,
		&c.ShowCountdown,
		&c.FreeShipping,
		&c.StoreNoticeEnabled,
		&c.StoreNoticeMessage,
		&c.CreatedAt,
		&c.UpdatedAt,
		&targetingRaw,
	)
	if err != nil {
		return c, err
	}
	if c.DiscountValue, err = decimal.NewFromString(value); err != nil {
		return c, fmt.Errorf("campaign %d discount value: %w", c.ID, err)
	}
	// malformed targeting behaves like no targeting
	if err = json.Unmarshal(targetingRaw, &c.Targeting); err != nil {
		c.Targeting = domain.Targeting{}
	}
	return c, nil
}

// ListCustomHolidays returns the store-defined holidays in saved order.
func (r *CampaignRepository) ListCustomHolidays(ctx context.Context) ([]domain.CustomHoliday, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, month, day FROM custom_holidays ORDER BY position`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CustomHoliday, error) {
		var h domain.CustomHoliday
		err := row.Scan(&h.Name, &h.Month, &h.Day)
		return h, err
	})
}

// ReplaceCustomHolidays deletes every stored custom holiday and inserts
// holidays in a single transaction.
func (r *CampaignRepository) ReplaceCustomHolidays(ctx context.Context, holidays []domain.CustomHoliday) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM custom_holidays`); err != nil {
		return err
	}
	if len(holidays) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, h := range holidays {
		batch.Queue(`INSERT INTO custom_holidays (position, name, month, day) VALUES ($1,$2,$3,$4)`,
			i, h.Name, h.Month, h.Day)
	}
	err = tx.SendBatch(ctx, batch).Close()
	return err
}
