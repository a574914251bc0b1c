package usecase

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"sales-campaigns/internal/core/domain"
	"sales-campaigns/internal/core/holiday"
	"sales-campaigns/internal/core/port"
	"sales-campaigns/internal/core/schedule"
)

var hundred = decimal.NewFromInt(100)

type windowResult struct {
	window domain.Window
	ok     bool
}

// Evaluation is one evaluation context: a fixed instant, an immutable
// snapshot of campaigns and custom holidays, and the caches derived from
// them. It must be discarded when the context ends and is not safe for
// concurrent use.
type Evaluation struct {
	ID string

	now       time.Time
	resolver  schedule.Resolver
	campaigns []domain.Campaign
	byID      map[int64]int
	custom    []domain.CustomHoliday

	calendars      map[int]*holiday.Calendar
	windows        map[int64]windowResult
	running        []int64
	runningDone    bool
	discounts      map[int64]decimal.Decimal
	notice         *domain.Campaign
	noticeResolved bool
}

// NewEvaluation builds an evaluation context. now is truncated to whole
// seconds; campaigns are ordered by ascending id, which is the order every
// "first matching campaign" rule follows.
func NewEvaluation(id string, now time.Time, loc *time.Location, campaigns []domain.Campaign, custom []domain.CustomHoliday) *Evaluation {
	sorted := slices.Clone(campaigns)
	slices.SortStableFunc(sorted, func(a, b domain.Campaign) int {
		return cmp.Compare(a.ID, b.ID)
	})
	byID := make(map[int64]int, len(sorted))
	for i, c := range sorted {
		byID[c.ID] = i
	}

	e := &Evaluation{
		ID:        id,
		now:       now.UTC().Truncate(time.Second),
		campaigns: sorted,
		byID:      byID,
		custom:    slices.Clone(custom),
		calendars: make(map[int]*holiday.Calendar),
		windows:   make(map[int64]windowResult, len(sorted)),
		discounts: make(map[int64]decimal.Decimal),
	}
	e.resolver = schedule.NewResolver(loc, e)
	return e
}

// Now returns the instant this evaluation is pinned to.
func (e *Evaluation) Now() time.Time {
	return e.now
}

// Campaigns returns the snapshot in ascending id order.
func (e *Evaluation) Campaigns() []domain.Campaign {
	return e.campaigns
}

// Campaign looks a campaign up by id.
func (e *Evaluation) Campaign(id int64) (domain.Campaign, bool) {
	i, ok := e.byID[id]
	if !ok {
		return domain.Campaign{}, false
	}
	return e.campaigns[i], true
}

// Calendar returns the holiday calendar for year, including custom
// holidays. It implements schedule.CalendarSource.
func (e *Evaluation) Calendar(year int) *holiday.Calendar {
	if c, ok := e.calendars[year]; ok {
		return c
	}
	c := holiday.ForYear(year, e.custom)
	e.calendars[year] = c
	return c
}

// Window returns the resolved window of a campaign.
func (e *Evaluation) Window(id int64) (domain.Window, bool) {
	if r, ok := e.windows[id]; ok {
		return r.window, r.ok
	}
	c, ok := e.Campaign(id)
	if !ok {
		return domain.Window{}, false
	}
	w, ok := e.resolver.Resolve(c, e.now)
	e.windows[id] = windowResult{window: w, ok: ok}
	return w, ok
}

// Status classifies a campaign at the evaluation instant. Unknown ids are
// unscheduled.
func (e *Evaluation) Status(id int64) domain.CampaignStatus {
	c, ok := e.Campaign(id)
	if !ok {
		return domain.StatusUnscheduled
	}
	if c.StatusOverride == domain.OverrideRunning || c.StatusOverride == domain.OverrideEnded {
		return domain.ClassifyStatus(c.StatusOverride, domain.Window{}, false, e.now)
	}
	w, ok := e.Window(id)
	return domain.ClassifyStatus(c.StatusOverride, w, ok, e.now)
}

// RunningCampaigns returns the ids of running campaigns in ascending order.
// The set is computed once and stays fixed for the evaluation.
func (e *Evaluation) RunningCampaigns() []int64 {
	if !e.runningDone {
		e.running = make([]int64, 0, len(e.campaigns))
		for _, c := range e.campaigns {
			if e.Status(c.ID) == domain.StatusRunning {
				e.running = append(e.running, c.ID)
			}
		}
		e.runningDone = true
	}
	return slices.Clone(e.running)
}

func (e *Evaluation) runningCampaigns() []domain.Campaign {
	ids := e.RunningCampaigns()
	out := make([]domain.Campaign, 0, len(ids))
	for _, id := range ids {
		c, _ := e.Campaign(id)
		out = append(out, c)
	}
	return out
}

func applies(c domain.Campaign, p domain.Product) bool {
	return c.Targeting.Applies(p.ID, p.CategoryIDs, p.TagIDs)
}

// DiscountedPrice returns the best price any running campaign offers for
// base. base is returned unchanged when it is not positive or when no
// campaign applies. Results are memoized per product id.
func (e *Evaluation) DiscountedPrice(p domain.Product, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return base
	}
	if price, ok := e.discounts[p.ID]; ok {
		return price
	}

	best := base
	for _, c := range e.runningCampaigns() {
		if !applies(c, p) {
			continue
		}
		if p.OnSaleAlready() && !c.ApplyToSaleItems {
			continue
		}
		candidate, ok := c.CandidatePrice(base)
		if !ok {
			continue
		}
		if candidate.LessThan(best) {
			best = candidate
		}
	}
	e.discounts[p.ID] = best
	return best
}

// prices returns the regular and discounted price. ok is false when the
// product has no regular price.
func (e *Evaluation) prices(p domain.Product) (regular, discounted decimal.Decimal, ok bool) {
	if !p.RegularPrice.Valid {
		return decimal.Decimal{}, decimal.Decimal{}, false
	}
	regular = p.RegularPrice.Decimal
	return regular, e.DiscountedPrice(p, regular), true
}

// EffectivePrice is the price a customer pays. A campaign discount wins when
// it is below the regular price; otherwise the product keeps its own sale
// price, or its regular price. ok is false for unpriced products.
func (e *Evaluation) EffectivePrice(p domain.Product) (decimal.Decimal, bool) {
	regular, discounted, ok := e.prices(p)
	if !ok {
		if p.SalePrice.Valid {
			return p.SalePrice.Decimal, true
		}
		return decimal.Decimal{}, false
	}
	if discounted.LessThan(regular) {
		return discounted, true
	}
	if p.SalePrice.Valid {
		return p.SalePrice.Decimal, true
	}
	return regular, true
}

// IsOnSale reports whether a campaign discounts the product, or the product
// carries its own sale price below the regular price.
func (e *Evaluation) IsOnSale(p domain.Product) bool {
	regular, discounted, ok := e.prices(p)
	if !ok {
		return false
	}
	if discounted.LessThan(regular) {
		return true
	}
	return p.SalePrice.Valid && p.SalePrice.Decimal.LessThan(regular)
}

// Savings summarises the campaign discount against the regular price. It
// is absent when no campaign lowers the price.
func (e *Evaluation) Savings(p domain.Product) (domain.Savings, bool) {
	regular, discounted, ok := e.prices(p)
	if !ok || !discounted.LessThan(regular) {
		return domain.Savings{}, false
	}
	saved := regular.Sub(discounted)
	pct := decimal.Zero
	if regular.IsPositive() {
		pct = saved.Div(regular).Mul(hundred)
	}
	return domain.Savings{Amount: saved, Percent: pct}, true
}

// CountdownTarget returns the nearest end among running campaigns that
// target the product, show a countdown and have not ended yet. Ties keep
// the lower campaign id.
func (e *Evaluation) CountdownTarget(p domain.Product) (time.Time, bool) {
	var (
		target time.Time
		found  bool
	)
	for _, c := range e.runningCampaigns() {
		if !c.ShowCountdown || !applies(c, p) {
			continue
		}
		w, ok := e.Window(c.ID)
		if !ok || !e.now.Before(w.End) {
			continue
		}
		if !found || w.End.Before(target) {
			target, found = w.End, true
		}
	}
	return target, found
}

// FreeShipping reports whether a running campaign targeting the product
// grants free shipping. The flag is informational; shipping integrations
// decide what to do with it.
func (e *Evaluation) FreeShipping(p domain.Product) bool {
	for _, c := range e.runningCampaigns() {
		if c.FreeShipping && applies(c, p) {
			return true
		}
	}
	return false
}

// NoticeCampaign returns the first running campaign with a store notice.
func (e *Evaluation) NoticeCampaign() (domain.Campaign, bool) {
	if !e.noticeResolved {
		for _, c := range e.runningCampaigns() {
			if c.StoreNoticeEnabled {
				e.notice = &c
				break
			}
		}
		e.noticeResolved = true
	}
	if e.notice == nil {
		return domain.Campaign{}, false
	}
	return *e.notice, true
}

// ActiveNoticeMessage returns the notice campaign's message when it has one.
func (e *Evaluation) ActiveNoticeMessage() (string, bool) {
	c, ok := e.NoticeCampaign()
	if !ok || c.StoreNoticeMessage == "" {
		return "", false
	}
	return c.StoreNoticeMessage, true
}

// ApplyStoreNotice overlays the notice campaign on the global notice
// settings. Without a notice campaign the global settings are returned
// as is.
func (e *Evaluation) ApplyStoreNotice(global port.StoreNotice) port.StoreNotice {
	if _, ok := e.NoticeCampaign(); !ok {
		return global
	}
	global.Enabled = true
	if msg, ok := e.ActiveNoticeMessage(); ok {
		global.Text = msg
	}
	return global
}
