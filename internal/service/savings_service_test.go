package service

import (
	"context"
	"testing"
	"time"

	"spendguard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func savedPurchase(item, website string, amount float64, when time.Time) *models.SavedPurchase {
	return &models.SavedPurchase{
		ID:                 uuid.New(),
		ItemName:           item,
		AmountSaved:        amount,
		Currency:           "USD",
		Website:            website,
		SavedDate:          when,
		DistributionMethod: models.DistributionEqual,
	}
}

func TestDailySavings(t *testing.T) {
	now := time.Now()
	store := &fakeSavedPurchaseStore{saved: []*models.SavedPurchase{
		savedPurchase("Keyboard", "amazon.com", 150, now),
		savedPurchase("Mouse", "amazon.com", 50, now),
		savedPurchase("Jacket", "zara.com", 80, now),
		savedPurchase("Old save", "ebay.com", 999, now.AddDate(0, 0, -3)),
	}}
	svc := NewSavingsService(store, zap.NewNop())

	report, err := svc.DailySavings(context.Background(), uuid.New(), nil)
	require.NoError(t, err)

	assert.Equal(t, 280.0, report.TotalSaved)
	assert.Equal(t, 3, report.PurchasesAvoided)
	require.Len(t, report.ByWebsite, 2)
	// Biggest total first.
	assert.Equal(t, "amazon.com", report.ByWebsite[0].Website)
	assert.Equal(t, 200.0, report.ByWebsite[0].TotalSaved)
	assert.Equal(t, 2, report.ByWebsite[0].Count)
	assert.Equal(t, "zara.com", report.ByWebsite[1].Website)
	assert.Len(t, report.SavedPurchases, 3)
}

func TestDailySavingsExplicitDate(t *testing.T) {
	day := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.Local)
	store := &fakeSavedPurchaseStore{saved: []*models.SavedPurchase{
		savedPurchase("Keyboard", "amazon.com", 150, day.Add(10*time.Hour)),
		savedPurchase("Other day", "amazon.com", 75, day.AddDate(0, 0, 1).Add(time.Hour)),
	}}
	svc := NewSavingsService(store, zap.NewNop())

	report, err := svc.DailySavings(context.Background(), uuid.New(), &day)
	require.NoError(t, err)

	assert.Equal(t, day, report.Date)
	assert.Equal(t, 150.0, report.TotalSaved)
	assert.Equal(t, 1, report.PurchasesAvoided)
}

func TestDailySavingsEmptyDay(t *testing.T) {
	svc := NewSavingsService(&fakeSavedPurchaseStore{}, zap.NewNop())

	report, err := svc.DailySavings(context.Background(), uuid.New(), nil)
	require.NoError(t, err)

	assert.Zero(t, report.TotalSaved)
	assert.Zero(t, report.PurchasesAvoided)
	assert.Empty(t, report.ByWebsite)
}

func TestSavingsStats(t *testing.T) {
	now := time.Now()
	store := &fakeSavedPurchaseStore{saved: []*models.SavedPurchase{
		savedPurchase("Keyboard", "amazon.com", 150, now),
		savedPurchase("Jacket", "zara.com", 90, now.AddDate(0, 0, -1)),
		savedPurchase("Mouse", "amazon.com", 60, now.AddDate(0, 0, -2)),
	}}
	svc := NewSavingsService(store, zap.NewNop())

	report, err := svc.SavingsStats(context.Background(), uuid.New(), "week", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "week", report.PeriodType)
	assert.Equal(t, 300.0, report.TotalSaved)
	assert.Equal(t, 3, report.PurchasesAvoided)
	assert.Equal(t, 7, report.Days)
	assert.InDelta(t, 300.0/7, report.AvgSavedPerDay, 1e-9)
	assert.InDelta(t, 100.0, report.AvgSavedPerPurchase, 1e-9)

	require.NotNil(t, report.BiggestSave)
	assert.Equal(t, "Keyboard", report.BiggestSave.ItemName)

	require.Len(t, report.ByWebsite, 2)
	assert.Equal(t, "amazon.com", report.ByWebsite[0].Website)
	assert.Equal(t, 210.0, report.ByWebsite[0].TotalSaved)
	assert.Equal(t, []string{"Keyboard", "Mouse"}, report.ByWebsite[0].Items)

	// Trend is ascending by day, one point per day.
	require.Len(t, report.DailyTrend, 3)
	assert.True(t, report.DailyTrend[0].Date < report.DailyTrend[1].Date)
	assert.True(t, report.DailyTrend[1].Date < report.DailyTrend[2].Date)

	assert.Len(t, report.RecentSaves, 3)
}

func TestSavingsStatsExplicitRange(t *testing.T) {
	start := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local)
	store := &fakeSavedPurchaseStore{saved: []*models.SavedPurchase{
		savedPurchase("Inside", "a.com", 100, start.AddDate(0, 0, 2)),
		savedPurchase("Outside", "a.com", 999, end.AddDate(0, 0, 5)),
	}}
	svc := NewSavingsService(store, zap.NewNop())

	report, err := svc.SavingsStats(context.Background(), uuid.New(), "week", &start, &end)
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.TotalSaved)
	assert.Equal(t, 1, report.PurchasesAvoided)
	assert.Equal(t, start, report.StartDate)
	// The range covers all ten calendar days, end day inclusive.
	assert.Equal(t, 10, report.Days)
}

func TestSavingsStatsEmptyPeriod(t *testing.T) {
	svc := NewSavingsService(&fakeSavedPurchaseStore{}, zap.NewNop())

	report, err := svc.SavingsStats(context.Background(), uuid.New(), "month", nil, nil)
	require.NoError(t, err)

	assert.Zero(t, report.TotalSaved)
	assert.Zero(t, report.AvgSavedPerPurchase)
	assert.Nil(t, report.BiggestSave)
	assert.Empty(t, report.DailyTrend)
}

func TestSavingsStatsRecentSavesCapped(t *testing.T) {
	now := time.Now()
	store := &fakeSavedPurchaseStore{}
	for i := 0; i < 15; i++ {
		store.saved = append(store.saved, savedPurchase("Item", "shop.com", 10, now.Add(-time.Duration(i)*time.Hour)))
	}
	svc := NewSavingsService(store, zap.NewNop())

	report, err := svc.SavingsStats(context.Background(), uuid.New(), "week", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 15, report.PurchasesAvoided)
	assert.Len(t, report.RecentSaves, 10)
}
