package service

import (
	"context"
	"time"

	"spendguard/internal/models"
	"spendguard/internal/repository"

	"github.com/google/uuid"
)

// GoalStore is the persistence surface the goal-related services need.
// Satisfied by repository.GoalRepository.
type GoalStore interface {
	Create(ctx context.Context, goal *models.Goal) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Goal, error)
	ListByUserAndTypes(ctx context.Context, userID uuid.UUID, types []models.GoalType) ([]*models.Goal, error)
	GetDefaultDailySpendingGoal(ctx context.Context, userID uuid.UUID) (*models.Goal, error)
	ClearDefaults(ctx context.Context, userID, exceptGoalID uuid.UUID) error
	Update(ctx context.Context, userID, goalID uuid.UUID, fields map[string]interface{}) (*models.Goal, error)
	AddToCurrentAmount(ctx context.Context, goalID uuid.UUID, delta float64) error
	ResetDaily(ctx context.Context, userID uuid.UUID) (int64, error)
}

// PurchaseStore is satisfied by repository.PurchaseRepository.
type PurchaseStore interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	ListBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Purchase, error)
	List(ctx context.Context, userID uuid.UUID, filter repository.PurchaseFilter) ([]*models.Purchase, error)
	Count(ctx context.Context, userID uuid.UUID, filter repository.PurchaseFilter) (int64, error)
	TotalSpent(ctx context.Context, userID uuid.UUID) (float64, error)
	CategoryBreakdown(ctx context.Context, userID uuid.UUID) (map[string]repository.CategoryStat, error)
}

// SavedPurchaseStore is satisfied by repository.SavedPurchaseRepository.
type SavedPurchaseStore interface {
	Create(ctx context.Context, sp *models.SavedPurchase) error
	ListBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.SavedPurchase, error)
}

// UserStore is satisfied by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TextGenerator produces a completion for a prompt. Satisfied by LLMService.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
