package service

import (
	"context"
	"time"

	"spendguard/internal/models"
	"spendguard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type AddPurchaseInput struct {
	ItemName     string
	Price        float64
	Currency     string
	Website      string
	URL          string
	Description  string
	PurchaseDate *time.Time
}

type ListPurchasesInput struct {
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
	SortAsc   bool
}

// PurchaseStatistics summarizes a user's whole purchase history.
type PurchaseStatistics struct {
	TotalPurchases    int64
	TotalSpent        float64
	CategoryBreakdown map[string]repository.CategoryStat
}

type PurchaseListing struct {
	Purchases  []*models.Purchase
	Total      int64
	Limit      int
	Offset     int
	HasMore    bool
	Statistics PurchaseStatistics
}

// PurchaseService records purchases (categorized through the AI classifier)
// and serves filtered listings with spending statistics.
type PurchaseService struct {
	purchases   PurchaseStore
	categorizer *CategorizationService
	logger      *zap.Logger
}

func NewPurchaseService(purchases PurchaseStore, categorizer *CategorizationService, logger *zap.Logger) *PurchaseService {
	return &PurchaseService{
		purchases:   purchases,
		categorizer: categorizer,
		logger:      logger,
	}
}

// AddPurchase categorizes and stores a purchase. Records are immutable once
// written.
func (s *PurchaseService) AddPurchase(ctx context.Context, userID uuid.UUID, input AddPurchaseInput) (*models.Purchase, error) {
	if input.ItemName == "" || input.Price == 0 || input.Website == "" {
		return nil, NewValidationError("Missing required fields: item_name, price, website")
	}
	if input.Price < 0 {
		return nil, NewValidationError("Price must be a positive number")
	}

	category := s.categorizer.Categorize(ctx, input.ItemName, input.Description)

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	purchaseDate := now
	if input.PurchaseDate != nil {
		purchaseDate = *input.PurchaseDate
	}

	purchase := &models.Purchase{
		ID:           uuid.New(),
		UserID:       userID,
		ItemName:     input.ItemName,
		Price:        input.Price,
		Currency:     currency,
		Category:     category,
		Website:      input.Website,
		URL:          input.URL,
		Description:  input.Description,
		PurchaseDate: purchaseDate,
		CreatedAt:    now,
	}

	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}

	s.logger.Info("Purchase recorded",
		zap.String("user_id", userID.String()),
		zap.String("item", purchase.ItemName),
		zap.Float64("price", purchase.Price),
		zap.String("category", string(purchase.Category)),
	)

	return purchase, nil
}

// ListPurchases returns a filtered, paginated page of purchases together
// with overall spending statistics for the user.
func (s *PurchaseService) ListPurchases(ctx context.Context, userID uuid.UUID, input ListPurchasesInput) (*PurchaseListing, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	filter := repository.PurchaseFilter{
		Category:  input.Category,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Limit:     uint64(limit),
		Offset:    uint64(offset),
		SortAsc:   input.SortAsc,
	}

	purchases, err := s.purchases.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.purchases.Count(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	totalSpent, err := s.purchases.TotalSpent(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.purchases.CategoryBreakdown(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &PurchaseListing{
		Purchases: purchases,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
		HasMore:   int64(offset+limit) < total,
		Statistics: PurchaseStatistics{
			TotalPurchases:    total,
			TotalSpent:        totalSpent,
			CategoryBreakdown: breakdown,
		},
	}, nil
}
