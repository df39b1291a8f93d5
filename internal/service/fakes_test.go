package service

import (
	"context"
	"sync"
	"time"

	"spendguard/internal/models"
	"spendguard/internal/repository"

	"github.com/google/uuid"
)

// fakeGoalStore is an in-memory GoalStore for service tests.
type fakeGoalStore struct {
	goals      []*models.Goal
	createErr  error
	clearCalls []uuid.UUID // exceptGoalID per ClearDefaults call
	added      map[uuid.UUID]float64
	addErr     error
	resetCount int64
}

func (f *fakeGoalStore) Create(ctx context.Context, goal *models.Goal) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.goals = append(f.goals, goal)
	return nil
}

func (f *fakeGoalStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Goal, error) {
	return f.goals, nil
}

func (f *fakeGoalStore) ListByUserAndTypes(ctx context.Context, userID uuid.UUID, types []models.GoalType) ([]*models.Goal, error) {
	var result []*models.Goal
	for _, goal := range f.goals {
		for _, t := range types {
			if goal.Type == t {
				result = append(result, goal)
				break
			}
		}
	}
	return result, nil
}

func (f *fakeGoalStore) GetDefaultDailySpendingGoal(ctx context.Context, userID uuid.UUID) (*models.Goal, error) {
	for _, goal := range f.goals {
		if goal.IsDefault && goal.Type == models.GoalTypeDailySpending {
			return goal, nil
		}
	}
	return nil, nil
}

func (f *fakeGoalStore) ClearDefaults(ctx context.Context, userID, exceptGoalID uuid.UUID) error {
	f.clearCalls = append(f.clearCalls, exceptGoalID)
	for _, goal := range f.goals {
		if goal.ID != exceptGoalID {
			goal.IsDefault = false
		}
	}
	return nil
}

func (f *fakeGoalStore) Update(ctx context.Context, userID, goalID uuid.UUID, fields map[string]interface{}) (*models.Goal, error) {
	for _, goal := range f.goals {
		if goal.ID != goalID || goal.UserID != userID {
			continue
		}
		if name, ok := fields["name"]; ok {
			goal.Name = name.(string)
		}
		if target, ok := fields["target_amount"]; ok {
			goal.TargetAmount = target.(float64)
		}
		if current, ok := fields["current_amount"]; ok {
			goal.CurrentAmount = current.(float64)
		}
		if isDefault, ok := fields["is_default"]; ok {
			goal.IsDefault = isDefault.(bool)
		}
		return goal, nil
	}
	return nil, nil
}

func (f *fakeGoalStore) AddToCurrentAmount(ctx context.Context, goalID uuid.UUID, delta float64) error {
	if f.addErr != nil {
		return f.addErr
	}
	if f.added == nil {
		f.added = make(map[uuid.UUID]float64)
	}
	f.added[goalID] += delta
	return nil
}

func (f *fakeGoalStore) ResetDaily(ctx context.Context, userID uuid.UUID) (int64, error) {
	return f.resetCount, nil
}

// fakePurchaseStore returns canned purchases and records creates.
type fakePurchaseStore struct {
	purchases []*models.Purchase
	created   []*models.Purchase
	total     float64
	breakdown map[string]repository.CategoryStat
}

func (f *fakePurchaseStore) Create(ctx context.Context, purchase *models.Purchase) error {
	f.created = append(f.created, purchase)
	return nil
}

func (f *fakePurchaseStore) ListBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.Purchase, error) {
	var result []*models.Purchase
	for _, p := range f.purchases {
		if !p.PurchaseDate.Before(start) && p.PurchaseDate.Before(end) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePurchaseStore) List(ctx context.Context, userID uuid.UUID, filter repository.PurchaseFilter) ([]*models.Purchase, error) {
	return f.purchases, nil
}

func (f *fakePurchaseStore) Count(ctx context.Context, userID uuid.UUID, filter repository.PurchaseFilter) (int64, error) {
	return int64(len(f.purchases)), nil
}

func (f *fakePurchaseStore) TotalSpent(ctx context.Context, userID uuid.UUID) (float64, error) {
	return f.total, nil
}

func (f *fakePurchaseStore) CategoryBreakdown(ctx context.Context, userID uuid.UUID) (map[string]repository.CategoryStat, error) {
	return f.breakdown, nil
}

// fakeSavedPurchaseStore records audit inserts and serves a canned history.
type fakeSavedPurchaseStore struct {
	saved     []*models.SavedPurchase
	created   []*models.SavedPurchase
	createErr error
}

func (f *fakeSavedPurchaseStore) Create(ctx context.Context, sp *models.SavedPurchase) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, sp)
	return nil
}

func (f *fakeSavedPurchaseStore) ListBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*models.SavedPurchase, error) {
	var result []*models.SavedPurchase
	for _, sp := range f.saved {
		if !sp.SavedDate.Before(start) && !sp.SavedDate.After(end) {
			result = append(result, sp)
		}
	}
	return result, nil
}

// fakeGenerator scripts TextGenerator responses. When respond is set it
// overrides the fixed response/err pair. Safe for concurrent use because
// batch categorization calls it from multiple goroutines.
type fakeGenerator struct {
	mu       sync.Mutex
	response string
	err      error
	prompts  []string
	respond  func(prompt string) (string, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.respond != nil {
		return f.respond(prompt)
	}
	return f.response, f.err
}
