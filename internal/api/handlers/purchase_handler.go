package handlers

import (
	"time"

	"spendguard/internal/dto"
	"spendguard/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PurchaseHandler struct {
	purchaseService *service.PurchaseService
	spendingService *service.SpendingService
	categorizer     *service.CategorizationService
	logger          *zap.Logger
}

func NewPurchaseHandler(
	purchaseService *service.PurchaseService,
	spendingService *service.SpendingService,
	categorizer *service.CategorizationService,
	logger *zap.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		spendingService: spendingService,
		categorizer:     categorizer,
		logger:          logger,
	}
}

// AddPurchase godoc
// @Summary Record a purchase
// @Description Store a purchase with an AI-assigned category
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body dto.AddPurchaseRequest true "Purchase to record"
// @Success 201 {object} dto.AddPurchaseResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /purchases [post]
func (h *PurchaseHandler) AddPurchase(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var req dto.AddPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	input := service.AddPurchaseInput{
		ItemName:    req.ItemName,
		Price:       req.Price,
		Currency:    req.Currency,
		Website:     req.Website,
		URL:         req.URL,
		Description: req.Description,
	}
	if req.PurchaseDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PurchaseDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid purchase_date, expected RFC3339",
			})
		}
		input.PurchaseDate = &parsed
	}

	purchase, err := h.purchaseService.AddPurchase(c.Context(), userID, input)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to add purchase")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AddPurchaseResponse{
		Success:  true,
		Purchase: purchaseResponse(purchase),
		Message:  "Purchase added successfully",
	})
}

// ListPurchases godoc
// @Summary List purchases
// @Description List purchases with filters, pagination and statistics
// @Tags purchases
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Param category query string false "Filter by category"
// @Param start_date query string false "RFC3339 lower bound"
// @Param end_date query string false "RFC3339 upper bound"
// @Param sort query string false "asc or desc (default desc)"
// @Success 200 {object} dto.PurchaseListResponse
// @Security Bearer
// @Router /purchases [get]
func (h *PurchaseHandler) ListPurchases(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	input := service.ListPurchasesInput{
		Category: c.Query("category"),
		Limit:    c.QueryInt("limit"),
		Offset:   c.QueryInt("offset"),
		SortAsc:  c.Query("sort") == "asc",
	}
	if raw := c.Query("start_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid start_date, expected RFC3339",
			})
		}
		input.StartDate = &parsed
	}
	if raw := c.Query("end_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid end_date, expected RFC3339",
			})
		}
		input.EndDate = &parsed
	}

	listing, err := h.purchaseService.ListPurchases(c.Context(), userID, input)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to retrieve purchases")
	}

	resp := dto.PurchaseListResponse{
		Success:   true,
		Purchases: make([]dto.PurchaseResponse, 0, len(listing.Purchases)),
		Pagination: dto.Pagination{
			Total:   listing.Total,
			Limit:   listing.Limit,
			Offset:  listing.Offset,
			HasMore: listing.HasMore,
		},
		Statistics: dto.PurchaseStatistics{
			TotalPurchases:    listing.Statistics.TotalPurchases,
			TotalSpent:        listing.Statistics.TotalSpent,
			CategoryBreakdown: make(map[string]dto.CategoryStats, len(listing.Statistics.CategoryBreakdown)),
		},
	}
	for _, p := range listing.Purchases {
		resp.Purchases = append(resp.Purchases, purchaseResponse(p))
	}
	for category, stat := range listing.Statistics.CategoryBreakdown {
		resp.Statistics.CategoryBreakdown[category] = dto.CategoryStats{
			TotalSpent: stat.TotalSpent,
			Count:      stat.Count,
		}
	}

	return c.JSON(resp)
}

// CheckSpending godoc
// @Summary Check a purchase against the daily limit
// @Description Evaluate whether a purchase would exceed the daily spending goal; returns a roast message when it would
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body dto.CheckSpendingRequest true "Candidate purchase"
// @Success 200 {object} dto.CheckSpendingResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /purchases/check-spending [post]
func (h *PurchaseHandler) CheckSpending(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	var req dto.CheckSpendingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	evaluation, err := h.spendingService.EvaluatePurchase(c.Context(), userID, req.ItemName, req.Price)
	if err != nil {
		return serviceError(c, h.logger, err, "Failed to check spending")
	}

	return c.JSON(dto.CheckSpendingResponse{
		Success:         true,
		CanPurchase:     evaluation.CanPurchase,
		IsOverspending:  evaluation.IsOverspending,
		DailyLimit:      evaluation.DailyLimit,
		SpentToday:      evaluation.SpentToday,
		Remaining:       evaluation.Remaining,
		NewTotal:        evaluation.NewTotal,
		OverspendAmount: evaluation.OverspendAmount,
		RoastMessage:    evaluation.RoastMessage,
		Message:         evaluation.Message,
	})
}

// Categorize godoc
// @Summary Categorize items
// @Description Classify item names into spending categories; unknown items map to "other"
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body dto.CategorizeRequest true "Items to categorize"
// @Success 200 {object} dto.CategorizeResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /categorize [post]
func (h *PurchaseHandler) Categorize(c *fiber.Ctx) error {
	var req dto.CategorizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required field: items",
		})
	}

	items := make([]service.ItemToCategorize, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.ItemToCategorize{
			Name:        item.Name,
			Description: item.Description,
		})
	}

	categories := h.categorizer.CategorizeBatch(c.Context(), items)

	resp := dto.CategorizeResponse{
		Success:    true,
		Categories: make([]string, 0, len(categories)),
	}
	for _, category := range categories {
		resp.Categories = append(resp.Categories, string(category))
	}

	return c.JSON(resp)
}
