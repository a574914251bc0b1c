package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"sales-campaigns/internal/core/domain"
	"sales-campaigns/internal/core/port"
	"sales-campaigns/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) port.Clock {
	return port.ClockFunc(func() time.Time { return t })
}

func newService(t *testing.T, now time.Time) (*CampaignUseCase, *mocks.MockCampaignRepository, *mocks.MockProductRepository) {
	campaigns := mocks.NewMockCampaignRepository(t)
	products := mocks.NewMockProductRepository(t)
	svc := NewCampaignUseCase(campaigns, products, fixedClock(now), Settings{
		Location: time.UTC,
		Language: language.AmericanEnglish,
		Currency: currency.USD,
	}, discardLogger())
	return svc, campaigns, products
}

// TestQuoteProduct ensures the usecase picks the lowest candidate price.
func TestQuoteProduct(t *testing.T) {
	svc, campaigns, products := newService(t, evalNow)

	p := product(100, "100.00")
	products.EXPECT().GetProduct(mock.Anything, int64(100)).Return(&p, nil)
	campaigns.EXPECT().ListPublishedCampaigns(mock.Anything).
		Return([]domain.Campaign{percentOff(1, "20"), amountOff(2, "30")}, nil)
	campaigns.EXPECT().ListCustomHolidays(mock.Anything).Return(nil, nil)

	q, err := svc.QuoteProduct(context.Background(), 100)
	require.NoError(t, err)
	require.NotNil(t, q.EffectivePrice)
	assert.True(t, q.EffectivePrice.Equal(money("70")))
	assert.True(t, q.OnSale)
	require.NotNil(t, q.Savings)
	assert.Equal(t, "30", q.Savings.Amount.String())
	assert.Equal(t, "30", q.Savings.Percent.String())
	require.NotNil(t, q.CountdownTarget)
	assert.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC), *q.CountdownTarget)
}

func TestQuoteProductNotFound(t *testing.T) {
	svc, _, products := newService(t, evalNow)
	products.EXPECT().GetProduct(mock.Anything, int64(9)).Return(nil, nil)

	_, err := svc.QuoteProduct(context.Background(), 9)
	assert.ErrorIs(t, err, port.ErrProductNotFound)
}

func TestQuoteProductsSharesOneEvaluation(t *testing.T) {
	svc, campaigns, products := newService(t, evalNow)

	a, b := product(1, "10"), product(2, "20")
	b.CategoryIDs = []int64{99}
	c := percentOff(1, "50")
	c.Targeting.ExcludeCategories = []int64{99}

	products.EXPECT().ListProducts(mock.Anything, []int64{1, 2, 3}).Return([]domain.Product{a, b}, nil)
	campaigns.EXPECT().ListPublishedCampaigns(mock.Anything).Return([]domain.Campaign{c}, nil).Once()
	campaigns.EXPECT().ListCustomHolidays(mock.Anything).Return(nil, nil).Once()

	quotes, err := svc.QuoteProducts(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.True(t, quotes[0].EffectivePrice.Equal(money("5")))
	assert.True(t, quotes[1].EffectivePrice.Equal(money("20")))
	assert.Nil(t, quotes[1].Savings)
	assert.False(t, quotes[1].OnSale)
}

func TestQuoteProductsEmpty(t *testing.T) {
	svc, _, _ := newService(t, evalNow)

	quotes, err := svc.QuoteProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestListCampaigns(t *testing.T) {
	svc, campaigns, _ := newService(t, evalNow)

	running := percentOff(2, "20")
	running.Title = "Summer"
	running.FreeShipping = true
	broken := amountOff(1, "5")
	broken.EndDate = ""
	holidayMode := domain.NewCampaign(3)
	holidayMode.DateMode = domain.DateModeHoliday
	holidayMode.HolidayKey = "Christmas_Day"

	campaigns.EXPECT().ListPublishedCampaigns(mock.Anything).
		Return([]domain.Campaign{running, holidayMode, broken}, nil)
	campaigns.EXPECT().ListCustomHolidays(mock.Anything).Return(nil, nil)

	list, err := svc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, domain.StatusUnscheduled, list[0].Status)
	assert.Nil(t, list[0].WindowStart)

	assert.Equal(t, domain.StatusRunning, list[1].Status)
	assert.Contains(t, list[1].DiscountLabel, "20")
	assert.Contains(t, list[1].DiscountLabel, "% off")
	assert.Contains(t, list[1].DiscountLabel, "Free shipping")
	require.NotNil(t, list[1].WindowEnd)

	assert.Equal(t, domain.DateModeHoliday, list[2].DateMode)
	assert.Equal(t, domain.StatusScheduled, list[2].Status)
	assert.Equal(t, "None", list[2].DiscountLabel)
	assert.Equal(t, time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC), *list[2].WindowStart)
}

func TestGetCampaign(t *testing.T) {
	svc, campaigns, _ := newService(t, evalNow)
	campaigns.EXPECT().ListPublishedCampaigns(mock.Anything).Return([]domain.Campaign{amountOff(5, "3")}, nil)
	campaigns.EXPECT().ListCustomHolidays(mock.Anything).Return(nil, nil)

	ov, err := svc.GetCampaign(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRunning, ov.Status)
	assert.Contains(t, ov.DiscountLabel, "off")

	_, err = svc.GetCampaign(context.Background(), 6)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestRunningCampaignsRepositoryError(t *testing.T) {
	svc, campaigns, _ := newService(t, evalNow)
	boom := errors.New("connection reset")
	campaigns.EXPECT().ListPublishedCampaigns(mock.Anything).Return(nil, boom)

	_, err := svc.RunningCampaigns(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStoreNotice(t *testing.T) {
	svc, campaigns, _ := newService(t, evalNow)
	c := percentOff(4, "10")
	c.StoreNoticeEnabled = true
	c.StoreNoticeMessage = "Everything 10% off"
	campaigns.EXPECT().ListPublishedCampaigns(mock.Anything).Return([]domain.Campaign{c}, nil)
	campaigns.EXPECT().ListCustomHolidays(mock.Anything).Return(nil, nil)

	got, err := svc.StoreNotice(context.Background(), port.StoreNotice{Text: "Welcome"})
	require.NoError(t, err)
	assert.Equal(t, port.StoreNotice{Enabled: true, Text: "Everything 10% off"}, got)
}

func TestHolidaysDefaultsToCurrentYear(t *testing.T) {
	svc, campaigns, _ := newService(t, evalNow)
	campaigns.EXPECT().ListCustomHolidays(mock.Anything).
		Return([]domain.CustomHoliday{{Name: "Store Birthday", Month: 6, Day: 6}}, nil)

	entries, err := svc.Holidays(context.Background(), 0)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, 2025, entries[0].Date.Year())

	var found bool
	for _, e := range entries {
		if e.Key == "Store_Birthday" {
			found = true
			assert.Equal(t, "2025-06-06", e.ISODate())
		}
	}
	assert.True(t, found)
}

func TestSaveCustomHolidays(t *testing.T) {
	svc, campaigns, _ := newService(t, evalNow)
	want := []domain.CustomHoliday{{Name: "Store Birthday", Month: 6, Day: 6}}
	campaigns.EXPECT().ReplaceCustomHolidays(mock.Anything, want).Return(nil)

	got, err := svc.SaveCustomHolidays(context.Background(), []domain.CustomHolidayInput{
		{Name: " Store Birthday", Month: 6, Day: 6},
		{Name: "Removed", Month: 1, Day: 1, Delete: true},
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestConcurrentQuotes ensures concurrent requests each get their own
// evaluation and never observe another request's clock.
func TestConcurrentQuotes(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	products := mocks.NewMockProductRepository(t)

	var (
		mu    sync.Mutex
		ticks = []time.Time{
			time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			evalNow,
		}
		calls int
	)
	clock := port.ClockFunc(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := ticks[calls%len(ticks)]
		calls++
		return now
	})
	svc := NewCampaignUseCase(campaigns, products, clock, Settings{}, discardLogger())

	p := product(100, "100")
	products.EXPECT().GetProduct(mock.Anything, int64(100)).Return(&p, nil)
	campaigns.EXPECT().ListPublishedCampaigns(mock.Anything).Return([]domain.Campaign{percentOff(1, "25")}, nil)
	campaigns.EXPECT().ListCustomHolidays(mock.Anything).Return(nil, nil)

	const count = 10
	prices := make([]decimal.Decimal, count)
	var wg sync.WaitGroup
	wg.Add(count)
	for i := 0; i < count; i++ {
		i := i
		go func() {
			defer wg.Done()
			q, err := svc.QuoteProduct(context.Background(), 100)
			if err == nil {
				prices[i] = *q.EffectivePrice
			}
		}()
	}
	wg.Wait()

	var full, discounted int
	for _, price := range prices {
		switch {
		case price.Equal(money("100")):
			full++
		case price.Equal(money("75")):
			discounted++
		}
	}
	assert.Equal(t, count/2, full)
	assert.Equal(t, count/2, discounted)
}
