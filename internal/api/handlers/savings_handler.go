package handlers

import (
	"fmt"
	"math"
	"time"

	"spendguard/internal/dto"
	"spendguard/internal/models"
	"spendguard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SavingsHandler struct {
	distributionService *service.DistributionService
	savingsService      *service.SavingsService
	logger              *zap.Logger
}

func NewSavingsHandler(
	distributionService *service.DistributionService,
	savingsService *service.SavingsService,
	logger *zap.Logger,
) *SavingsHandler {
	return &SavingsHandler{
		distributionService: distributionService,
		savingsService:      savingsService,
		logger:              logger,
	}
}

// Distribute godoc
// @Summary Distribute saved money across goals
// @Description Add an avoided purchase amount to the user's savings goals using the chosen distribution method
// @Tags savings
// @Accept json
// @Produce json
// @Param request body dto.DistributeSavingsRequest true "Amount and distribution method"
// @Success 200 {object} dto.DistributeSavingsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /savings/distribute [post]
func (h *SavingsHandler) Distribute(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var req dto.DistributeSavingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.distributionService.Distribute(
		c.Context(),
		userID,
		req.Amount,
		models.DistributionMethod(req.Distribution),
		service.SavedItemMeta{
			ItemName:    req.ItemName,
			Website:     req.Website,
			URL:         req.URL,
			Description: req.Description,
		},
	)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to add savings")
	}

	resp := dto.DistributeSavingsResponse{
		Success:            true,
		Message:            fmt.Sprintf("Successfully added $%.2f to %d goal(s)", result.TotalAmount, len(result.Allocations)),
		DistributionMethod: string(result.Method),
		TotalAmount:        result.TotalAmount,
		SavedPurchaseID:    result.SavedPurchase.ID.String(),
		GoalsUpdated:       make([]dto.UpdatedGoal, 0, len(result.Allocations)),
	}
	for _, alloc := range result.Allocations {
		resp.GoalsUpdated = append(resp.GoalsUpdated, dto.UpdatedGoal{
			ID:                 alloc.Goal.ID.String(),
			Name:               alloc.Goal.Name,
			PreviousAmount:     alloc.PreviousAmount,
			NewAmount:          alloc.Goal.CurrentAmount,
			AmountAdded:        alloc.AmountAdded,
			TargetAmount:       alloc.Goal.TargetAmount,
			ProgressPercentage: progressPercentage(alloc.Goal.CurrentAmount, alloc.Goal.TargetAmount),
		})
	}

	return c.JSON(resp)
}

// DailySavings godoc
// @Summary Daily savings summary
// @Description Total saved on a given day (default today) with a per-website breakdown
// @Tags savings
// @Produce json
// @Param date query string false "Day to report, YYYY-MM-DD (default today)"
// @Success 200 {object} dto.DailySavingsResponse
// @Security Bearer
// @Router /savings/daily [get]
func (h *SavingsHandler) DailySavings(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date format. Use YYYY-MM-DD",
			})
		}
		date = &parsed
	}

	report, err := h.savingsService.DailySavings(c.Context(), userID, date)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch daily savings")
	}

	resp := dto.DailySavingsResponse{
		Success:          true,
		Date:             report.Date.Format("2006-01-02"),
		TotalSaved:       report.TotalSaved,
		PurchasesAvoided: report.PurchasesAvoided,
		ByWebsite:        websiteBreakdown(report.ByWebsite),
		SavedPurchases:   make([]dto.SavedPurchaseResponse, 0, len(report.SavedPurchases)),
	}
	for _, sp := range report.SavedPurchases {
		resp.SavedPurchases = append(resp.SavedPurchases, savedPurchaseResponse(sp))
	}

	return c.JSON(resp)
}

// SavingsStats godoc
// @Summary Savings statistics
// @Description Aggregated savings over a named period or explicit date range
// @Tags savings
// @Produce json
// @Param period query string false "day, week, month, year or all (default week)"
// @Param start_date query string false "Range start, YYYY-MM-DD"
// @Param end_date query string false "Range end, YYYY-MM-DD"
// @Success 200 {object} dto.SavingsStatsResponse
// @Security Bearer
// @Router /savings/stats [get]
func (h *SavingsHandler) SavingsStats(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	period := c.Query("period", "week")
	var startDate, endDate *time.Time
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid start_date format. Use YYYY-MM-DD",
			})
		}
		startDate = &parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid end_date format. Use YYYY-MM-DD",
			})
		}
		endDate = &parsed
	}

	report, err := h.savingsService.SavingsStats(c.Context(), userID, period, startDate, endDate)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to fetch savings stats")
	}

	resp := dto.SavingsStatsResponse{
		Success: true,
		Period: dto.SavingsPeriod{
			Type:      report.PeriodType,
			StartDate: report.StartDate.Format("2006-01-02"),
			EndDate:   report.EndDate.Format("2006-01-02"),
			Days:      report.Days,
		},
		Summary: dto.SavingsSummary{
			TotalSaved:          report.TotalSaved,
			PurchasesAvoided:    report.PurchasesAvoided,
			AvgSavedPerDay:      report.AvgSavedPerDay,
			AvgSavedPerPurchase: report.AvgSavedPerPurchase,
		},
		Breakdown: dto.SavingsBreakdown{
			ByWebsite:  websiteBreakdown(report.ByWebsite),
			DailyTrend: make([]dto.DailyTrendPoint, 0, len(report.DailyTrend)),
		},
		RecentSaves: make([]dto.SavedPurchaseResponse, 0, len(report.RecentSaves)),
	}
	if report.BiggestSave != nil {
		resp.Summary.BiggestSave = &dto.BiggestSave{
			ItemName: report.BiggestSave.ItemName,
			Amount:   report.BiggestSave.AmountSaved,
			Website:  report.BiggestSave.Website,
			Date:     report.BiggestSave.SavedDate.Format(time.RFC3339),
		}
	}
	for _, point := range report.DailyTrend {
		resp.Breakdown.DailyTrend = append(resp.Breakdown.DailyTrend, dto.DailyTrendPoint{
			Date:             point.Date,
			TotalSaved:       point.TotalSaved,
			PurchasesAvoided: point.PurchasesAvoided,
		})
	}
	for _, sp := range report.RecentSaves {
		resp.RecentSaves = append(resp.RecentSaves, savedPurchaseResponse(sp))
	}

	return c.JSON(resp)
}

// progressPercentage formats goal progress capped at 100%.
func progressPercentage(current, target float64) string {
	if target == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", math.Min(current/target*100, 100))
}
