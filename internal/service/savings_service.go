package service

import (
	"context"
	"math"
	"sort"
	"time"

	"spendguard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WebsiteSavings aggregates avoided purchases per shop.
type WebsiteSavings struct {
	Website    string
	Count      int
	TotalSaved float64
	Items      []string
}

// DailySavingsReport summarizes one day of avoided purchases.
type DailySavingsReport struct {
	Date             time.Time
	TotalSaved       float64
	PurchasesAvoided int
	ByWebsite        []WebsiteSavings
	SavedPurchases   []*models.SavedPurchase
}

// DailyTrendPoint is one day in a savings trend.
type DailyTrendPoint struct {
	Date             string
	TotalSaved       float64
	PurchasesAvoided int
}

// SavingsStatsReport summarizes avoided purchases over a period.
type SavingsStatsReport struct {
	PeriodType          string
	StartDate           time.Time
	EndDate             time.Time
	Days                int
	TotalSaved          float64
	PurchasesAvoided    int
	AvgSavedPerDay      float64
	AvgSavedPerPurchase float64
	BiggestSave         *models.SavedPurchase
	ByWebsite           []WebsiteSavings
	DailyTrend          []DailyTrendPoint
	RecentSaves         []*models.SavedPurchase
}

// SavingsService reports on SavedPurchase history: how much a user avoided
// spending, per day and over longer periods.
type SavingsService struct {
	saved  SavedPurchaseStore
	logger *zap.Logger
}

func NewSavingsService(saved SavedPurchaseStore, logger *zap.Logger) *SavingsService {
	return &SavingsService{
		saved:  saved,
		logger: logger,
	}
}

// DailySavings returns the savings summary for one calendar day. A nil date
// means today.
func (s *SavingsService) DailySavings(ctx context.Context, userID uuid.UUID, date *time.Time) (*DailySavingsReport, error) {
	target := time.Now()
	if date != nil {
		target = *date
	}
	start, nextDay := dayWindow(target)
	end := nextDay.Add(-time.Millisecond)

	saved, err := s.saved.ListBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, sp := range saved {
		total += sp.AmountSaved
	}

	return &DailySavingsReport{
		Date:             start,
		TotalSaved:       total,
		PurchasesAvoided: len(saved),
		ByWebsite:        groupByWebsite(saved, 0),
		SavedPurchases:   saved,
	}, nil
}

// SavingsStats aggregates saved purchases over a named period (day, week,
// month, year, all) or an explicit [startDate, endDate] range.
func (s *SavingsService) SavingsStats(ctx context.Context, userID uuid.UUID, period string, startDate, endDate *time.Time) (*SavingsStatsReport, error) {
	start, end := periodRange(period, startDate, endDate)

	saved, err := s.saved.ListBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	var total float64
	var biggest *models.SavedPurchase
	for _, sp := range saved {
		total += sp.AmountSaved
		if biggest == nil || sp.AmountSaved > biggest.AmountSaved {
			biggest = sp
		}
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}

	avgPerPurchase := 0.0
	if len(saved) > 0 {
		avgPerPurchase = total / float64(len(saved))
	}

	recent := saved
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &SavingsStatsReport{
		PeriodType:          period,
		StartDate:           start,
		EndDate:             end,
		Days:                days,
		TotalSaved:          total,
		PurchasesAvoided:    len(saved),
		AvgSavedPerDay:      total / float64(days),
		AvgSavedPerPurchase: avgPerPurchase,
		BiggestSave:         biggest,
		ByWebsite:           groupByWebsite(saved, 3),
		DailyTrend:          dailyTrend(saved),
		RecentSaves:         recent,
	}, nil
}

func periodRange(period string, startDate, endDate *time.Time) (time.Time, time.Time) {
	if startDate != nil && endDate != nil {
		start, _ := dayWindow(*startDate)
		_, nextDay := dayWindow(*endDate)
		return start, nextDay.Add(-time.Second)
	}

	end := time.Now()
	switch period {
	case "day":
		start, _ := dayWindow(end)
		return start, end
	case "month":
		return end.AddDate(0, -1, 0), end
	case "year":
		return end.AddDate(-1, 0, 0), end
	case "all":
		return time.Unix(0, 0), end
	default: // week
		return end.AddDate(0, 0, -7), end
	}
}

// groupByWebsite aggregates per shop, biggest total first. maxItems limits
// the item names kept per website; 0 keeps none.
func groupByWebsite(saved []*models.SavedPurchase, maxItems int) []WebsiteSavings {
	byWebsite := make(map[string]*WebsiteSavings)
	order := make([]string, 0)
	for _, sp := range saved {
		entry, ok := byWebsite[sp.Website]
		if !ok {
			entry = &WebsiteSavings{Website: sp.Website}
			byWebsite[sp.Website] = entry
			order = append(order, sp.Website)
		}
		entry.Count++
		entry.TotalSaved += sp.AmountSaved
		if maxItems > 0 && len(entry.Items) < maxItems {
			entry.Items = append(entry.Items, sp.ItemName)
		}
	}

	result := make([]WebsiteSavings, 0, len(order))
	for _, website := range order {
		result = append(result, *byWebsite[website])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalSaved > result[j].TotalSaved
	})
	return result
}

func dailyTrend(saved []*models.SavedPurchase) []DailyTrendPoint {
	byDay := make(map[string]*DailyTrendPoint)
	for _, sp := range saved {
		day := sp.SavedDate.Format("2006-01-02")
		point, ok := byDay[day]
		if !ok {
			point = &DailyTrendPoint{Date: day}
			byDay[day] = point
		}
		point.PurchasesAvoided++
		point.TotalSaved += sp.AmountSaved
	}

	trend := make([]DailyTrendPoint, 0, len(byDay))
	for _, point := range byDay {
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})
	return trend
}
