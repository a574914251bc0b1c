package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sales-campaigns/internal/core/domain"
	"sales-campaigns/internal/core/holiday"
)

type seedCampaign struct {
	id        int64
	title     string
	dateMode  domain.DateMode
	start     string
	end       string
	recur     domain.Recurrence
	holiday   string
	offset    int
	duration  int
	kind      domain.DiscountType
	value     string
	countdown bool
	shipping  bool
	notice    string
	targeting domain.Targeting
}

type seedProduct struct {
	id         int64
	name       string
	regular    *string
	sale       *string
	categories []int64
	tags       []int64
}

func price(s string) *string { return &s }

// Seed inserts demo campaigns, products and a custom holiday. Existing rows
// are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now()
	day := func(d int) string { return now.AddDate(0, 0, d).Format(holiday.DateLayout) }

	campaigns := []seedCampaign{
		{
			id: 1, title: "Week sale", dateMode: domain.DateModeFixed,
			start: day(-1), end: day(6), recur: domain.RecurrenceNone,
			kind: domain.DiscountPercent, value: "15", countdown: true,
			notice: "Week sale: 15% off everything",
		},
		{
			id: 2, title: "Shoes clearance", dateMode: domain.DateModeFixed,
			start: day(-3), end: day(3), recur: domain.RecurrenceNone,
			kind: domain.DiscountAmount, value: "20", shipping: true,
			targeting: domain.Targeting{IncludeCategories: []int64{2}},
		},
		{
			id: 3, title: "Black Friday", dateMode: domain.DateModeHoliday,
			holiday: "Black_Friday", duration: 4,
			kind: domain.DiscountPercent, value: "30", countdown: true,
			targeting: domain.Targeting{ExcludeTags: []int64{9}},
		},
		{
			id: 4, title: "New year", dateMode: domain.DateModeFixed,
			start: "2000-12-26", end: "2000-12-31", recur: domain.RecurrenceYearly,
			kind: domain.DiscountPercent, value: "10",
		},
		{
			id: 5, title: "Store birthday", dateMode: domain.DateModeHoliday,
			holiday: holiday.CustomKey("Store Birthday"), offset: -1, duration: 3,
			kind: domain.DiscountPercent, value: "25", shipping: true,
		},
	}
	for _, c := range campaigns {
		if err := seedOneCampaign(ctx, db, c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", c.id, err)
		}
	}

	products := []seedProduct{
		{id: 1, name: "T-shirt", regular: price("25.00"), categories: []int64{1}, tags: []int64{1}},
		{id: 2, name: "Running shoes", regular: price("120.00"), categories: []int64{2}, tags: []int64{2}},
		{id: 3, name: "Socks", regular: price("8.00"), sale: price("6.00"), categories: []int64{1}},
		{id: 4, name: "Gift card", regular: price("50.00"), tags: []int64{9}},
		{id: 5, name: "Coming soon"},
	}
	for _, p := range products {
		categories, tags := p.categories, p.tags
		if categories == nil {
			categories = []int64{}
		}
		if tags == nil {
			tags = []int64{}
		}
		_, err := db.Exec(ctx, `INSERT INTO products
(id, name, regular_price, sale_price, category_ids, tag_ids)
VALUES ($1,$2,$3::numeric,$4::numeric,$5,$6) ON CONFLICT DO NOTHING`,
			p.id, p.name, p.regular, p.sale, categories, tags)
		if err != nil {
			return fmt.Errorf("seed product %d: %w", p.id, err)
		}
	}

	_, err := db.Exec(ctx, `INSERT INTO custom_holidays (position, name, month, day)
VALUES (0, 'Store Birthday', $1, $2) ON CONFLICT DO NOTHING`, int(now.Month()), now.Day())
	return err
}

func seedOneCampaign(ctx context.Context, db *pgxpool.Pool, c seedCampaign) error {
	duration := c.duration
	if duration == 0 {
		duration = 1
	}
	_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, title, status, date_mode, start_date, end_date, recurrence, holiday_key, holiday_offset,
     holiday_duration, discount_type, discount_value, show_countdown, free_shipping,
     store_notice_enabled, store_notice_message, created_at, updated_at)
VALUES ($1,$2,'publish',$3,$4,$5,$6,$7,$8,$9,$10,$11::numeric,$12,$13,$14,$15,now(),now()) ON CONFLICT DO NOTHING`,
		c.id, c.title, string(c.dateMode), c.start, c.end, string(orNone(c.recur)), c.holiday, c.offset,
		duration, string(c.kind), c.value, c.countdown, c.shipping, c.notice != "", c.notice)
	if err != nil {
		return err
	}
	tgtJSON, err := json.Marshal(c.targeting)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `INSERT INTO campaign_targeting (campaign_id, data)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, c.id, tgtJSON)
	return err
}

func orNone(r domain.Recurrence) domain.Recurrence {
	if r == "" {
		return domain.RecurrenceNone
	}
	return r
}
