package service

import (
	"context"
	"fmt"
	"strings"

	"spendguard/internal/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const categoryList = "food, fashion, entertainment, transport, travel, living"

// ItemToCategorize is one entry of a batch categorization request.
type ItemToCategorize struct {
	Name        string
	Description string
}

// CategorizationService classifies purchase descriptions into the fixed
// category set via the text generator. It never fails: any generator error
// or unrecognized reply maps to the "other" category.
type CategorizationService struct {
	generator TextGenerator
	logger    *zap.Logger
}

func NewCategorizationService(generator TextGenerator, logger *zap.Logger) *CategorizationService {
	return &CategorizationService{
		generator: generator,
		logger:    logger,
	}
}

// Categorize classifies a single item. Description is optional.
func (s *CategorizationService) Categorize(ctx context.Context, itemName, description string) models.PurchaseCategory {
	itemInfo := itemName
	if description != "" {
		itemInfo = fmt.Sprintf("%s (%s)", itemName, description)
	}

	prompt := fmt.Sprintf(
		`Categorize "%s" into one of the following categories: %s. If it doesn't fit any category, respond with "other". Reply with only one word - the category name.`,
		itemInfo, categoryList,
	)

	response, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("AI categorization failed, using default category",
			zap.String("item", itemName),
			zap.Error(err),
		)
		return models.CategoryOther
	}

	category := models.PurchaseCategory(normalizeCategory(response))
	if models.ValidCategory(category) {
		return category
	}

	return models.CategoryOther
}

// CategorizeBatch classifies each item independently; the result slice
// matches the input order.
func (s *CategorizationService) CategorizeBatch(ctx context.Context, items []ItemToCategorize) []models.PurchaseCategory {
	results := make([]models.PurchaseCategory, len(items))

	g, ctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			results[i] = s.Categorize(ctx, item.Name, item.Description)
			return nil
		})
	}
	// Categorize never returns an error, so Wait cannot fail.
	_ = g.Wait()

	return results
}

func normalizeCategory(response string) string {
	normalized := strings.ToLower(response)
	normalized = strings.ReplaceAll(normalized, ".", "")
	return strings.TrimSpace(normalized)
}
