package handlers

import (
	"errors"
	"time"

	"spendguard/internal/dto"
	"spendguard/internal/models"
	"spendguard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// currentUserID reads the authenticated user ID the auth middleware stored
// in the request locals.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userID").(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("missing user identity")
	}
	return userID, nil
}

// serviceError maps a service-layer error to an HTTP response.
func serviceError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ve.Message,
		})
	case errors.Is(err, service.ErrGoalNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	case errors.Is(err, service.ErrNoSavingsGoals):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No savings goals found for this user",
		})
	default:
		logger.Error(fallback, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fallback,
		})
	}
}

func goalResponse(goal *models.Goal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:            goal.ID.String(),
		UserID:        goal.UserID.String(),
		Name:          goal.Name,
		Type:          string(goal.Type),
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Period:        string(goal.Period),
		IsDefault:     goal.IsDefault,
		CreatedAt:     goal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     goal.UpdatedAt.Format(time.RFC3339),
	}
}

func purchaseResponse(p *models.Purchase) dto.PurchaseResponse {
	return dto.PurchaseResponse{
		ID:           p.ID.String(),
		ItemName:     p.ItemName,
		Price:        p.Price,
		Currency:     p.Currency,
		Category:     string(p.Category),
		Website:      p.Website,
		URL:          p.URL,
		Description:  p.Description,
		PurchaseDate: p.PurchaseDate.Format(time.RFC3339),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func savedPurchaseResponse(sp *models.SavedPurchase) dto.SavedPurchaseResponse {
	return dto.SavedPurchaseResponse{
		ID:                 sp.ID.String(),
		ItemName:           sp.ItemName,
		AmountSaved:        sp.AmountSaved,
		Website:            sp.Website,
		URL:                sp.URL,
		Description:        sp.Description,
		SavedAt:            sp.SavedDate.Format(time.RFC3339),
		DistributionMethod: string(sp.DistributionMethod),
	}
}

func websiteBreakdown(entries []service.WebsiteSavings) []dto.WebsiteSavingsBreakdown {
	result := make([]dto.WebsiteSavingsBreakdown, 0, len(entries))
	for _, entry := range entries {
		result = append(result, dto.WebsiteSavingsBreakdown{
			Website:          entry.Website,
			PurchasesAvoided: entry.Count,
			TotalSaved:       entry.TotalSaved,
			TopItems:         entry.Items,
		})
	}
	return result
}
