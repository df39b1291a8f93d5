package service

import (
	"context"
	"testing"

	"spendguard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func savingsGoal(name string, target, current float64) *models.Goal {
	return &models.Goal{
		ID:            uuid.New(),
		Name:          name,
		Type:          models.GoalTypeSavings,
		TargetAmount:  target,
		CurrentAmount: current,
		Period:        models.PeriodMonthly,
	}
}

func newDistributionService(goals *fakeGoalStore, saved *fakeSavedPurchaseStore) *DistributionService {
	return NewDistributionService(goals, saved, zap.NewNop())
}

func TestDistributeEqual(t *testing.T) {
	vacation := savingsGoal("Vacation", 2000, 50)
	laptop := savingsGoal("Laptop", 1200, 0)
	goals := &fakeGoalStore{goals: []*models.Goal{vacation, laptop}}
	saved := &fakeSavedPurchaseStore{}
	svc := newDistributionService(goals, saved)

	result, err := svc.Distribute(context.Background(), uuid.New(), 90, models.DistributionEqual, SavedItemMeta{
		ItemName: "Headphones",
		Website:  "amazon.com",
	})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 2)
	assert.Equal(t, 45.0, result.Allocations[0].AmountAdded)
	assert.Equal(t, 45.0, result.Allocations[1].AmountAdded)
	assert.Equal(t, 50.0, result.Allocations[0].PreviousAmount)
	assert.Equal(t, 95.0, result.Allocations[0].Goal.CurrentAmount)

	assert.Equal(t, 45.0, goals.added[vacation.ID])
	assert.Equal(t, 45.0, goals.added[laptop.ID])

	require.Len(t, saved.created, 1)
	record := saved.created[0]
	assert.Equal(t, "Headphones", record.ItemName)
	assert.Equal(t, 90.0, record.AmountSaved)
	assert.Equal(t, "USD", record.Currency)
	assert.Equal(t, models.DistributionEqual, record.DistributionMethod)
	assert.ElementsMatch(t, []string{vacation.ID.String(), laptop.ID.String()}, record.GoalsUpdated)
}

func TestDistributeProportional(t *testing.T) {
	small := savingsGoal("Small", 1000, 0)
	big := savingsGoal("Big", 4000, 0)
	goals := &fakeGoalStore{goals: []*models.Goal{small, big}}
	saved := &fakeSavedPurchaseStore{}
	svc := newDistributionService(goals, saved)

	result, err := svc.Distribute(context.Background(), uuid.New(), 500, models.DistributionProportional, SavedItemMeta{})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 2)
	assert.InDelta(t, 100.0, result.Allocations[0].AmountAdded, 1e-9)
	assert.InDelta(t, 400.0, result.Allocations[1].AmountAdded, 1e-9)
}

func TestDistributeProportionalSkipsZeroTargetGoals(t *testing.T) {
	funded := savingsGoal("Funded", 1000, 0)
	unfunded := savingsGoal("Unfunded", 0, 0)
	goals := &fakeGoalStore{goals: []*models.Goal{funded, unfunded}}
	saved := &fakeSavedPurchaseStore{}
	svc := newDistributionService(goals, saved)

	result, err := svc.Distribute(context.Background(), uuid.New(), 200, models.DistributionProportional, SavedItemMeta{})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 1)
	assert.Equal(t, funded.ID, result.Allocations[0].Goal.ID)
	assert.InDelta(t, 200.0, result.Allocations[0].AmountAdded, 1e-9)
	require.Len(t, saved.created, 1)
	assert.Equal(t, []string{funded.ID.String()}, saved.created[0].GoalsUpdated)
}

func TestDistributeProportionalNoTargets(t *testing.T) {
	goals := &fakeGoalStore{goals: []*models.Goal{
		savingsGoal("A", 0, 0),
		savingsGoal("B", 0, 0),
	}}
	svc := newDistributionService(goals, &fakeSavedPurchaseStore{})

	_, err := svc.Distribute(context.Background(), uuid.New(), 100, models.DistributionProportional, SavedItemMeta{})
	assert.True(t, IsValidation(err))
}

func TestDistributePriorityDefaultGoalTakesAll(t *testing.T) {
	vacation := savingsGoal("Vacation", 2000, 10)
	vacation.IsDefault = true
	laptop := savingsGoal("Laptop", 1200, 0)
	goals := &fakeGoalStore{goals: []*models.Goal{laptop, vacation}}
	saved := &fakeSavedPurchaseStore{}
	svc := newDistributionService(goals, saved)

	result, err := svc.Distribute(context.Background(), uuid.New(), 75, models.DistributionPriority, SavedItemMeta{})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 1)
	assert.Equal(t, vacation.ID, result.Allocations[0].Goal.ID)
	assert.Equal(t, 75.0, result.Allocations[0].AmountAdded)
	assert.Equal(t, 85.0, result.Allocations[0].Goal.CurrentAmount)
	assert.Zero(t, goals.added[laptop.ID])
}

func TestDistributePriorityWithoutDefaultSplitsEqually(t *testing.T) {
	a := savingsGoal("A", 500, 0)
	b := savingsGoal("B", 500, 0)
	goals := &fakeGoalStore{goals: []*models.Goal{a, b}}
	svc := newDistributionService(goals, &fakeSavedPurchaseStore{})

	result, err := svc.Distribute(context.Background(), uuid.New(), 30, models.DistributionPriority, SavedItemMeta{})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 2)
	assert.Equal(t, 15.0, result.Allocations[0].AmountAdded)
	assert.Equal(t, 15.0, result.Allocations[1].AmountAdded)
}

func TestDistributeEmptyMethodDefaultsToEqual(t *testing.T) {
	goals := &fakeGoalStore{goals: []*models.Goal{savingsGoal("Only", 100, 0)}}
	saved := &fakeSavedPurchaseStore{}
	svc := newDistributionService(goals, saved)

	result, err := svc.Distribute(context.Background(), uuid.New(), 20, "", SavedItemMeta{})
	require.NoError(t, err)

	assert.Equal(t, models.DistributionEqual, result.Method)
	require.Len(t, saved.created, 1)
	assert.Equal(t, models.DistributionEqual, saved.created[0].DistributionMethod)
}

func TestDistributeExcludesDailySpendingGoals(t *testing.T) {
	limit := &models.Goal{
		ID:           uuid.New(),
		Name:         "Daily Spending Limit",
		Type:         models.GoalTypeDailySpending,
		TargetAmount: 100,
		Period:       models.PeriodDaily,
		IsDefault:    true,
	}
	vacation := savingsGoal("Vacation", 2000, 0)
	goals := &fakeGoalStore{goals: []*models.Goal{limit, vacation}}
	svc := newDistributionService(goals, &fakeSavedPurchaseStore{})

	result, err := svc.Distribute(context.Background(), uuid.New(), 50, models.DistributionEqual, SavedItemMeta{})
	require.NoError(t, err)

	require.Len(t, result.Allocations, 1)
	assert.Equal(t, vacation.ID, result.Allocations[0].Goal.ID)
	assert.Zero(t, goals.added[limit.ID])
}

func TestDistributeNoSavingsGoals(t *testing.T) {
	svc := newDistributionService(&fakeGoalStore{}, &fakeSavedPurchaseStore{})

	_, err := svc.Distribute(context.Background(), uuid.New(), 100, models.DistributionEqual, SavedItemMeta{})
	assert.ErrorIs(t, err, ErrNoSavingsGoals)
}

func TestDistributeValidation(t *testing.T) {
	svc := newDistributionService(&fakeGoalStore{goals: []*models.Goal{savingsGoal("G", 100, 0)}}, &fakeSavedPurchaseStore{})

	_, err := svc.Distribute(context.Background(), uuid.New(), 0, models.DistributionEqual, SavedItemMeta{})
	assert.True(t, IsValidation(err))

	_, err = svc.Distribute(context.Background(), uuid.New(), -10, models.DistributionEqual, SavedItemMeta{})
	assert.True(t, IsValidation(err))

	_, err = svc.Distribute(context.Background(), uuid.New(), 10, "random", SavedItemMeta{})
	assert.True(t, IsValidation(err))
}

func TestDistributeMetaDefaults(t *testing.T) {
	goals := &fakeGoalStore{goals: []*models.Goal{savingsGoal("G", 100, 0)}}
	saved := &fakeSavedPurchaseStore{}
	svc := newDistributionService(goals, saved)

	_, err := svc.Distribute(context.Background(), uuid.New(), 10, models.DistributionEqual, SavedItemMeta{})
	require.NoError(t, err)

	require.Len(t, saved.created, 1)
	assert.Equal(t, "Unknown Item", saved.created[0].ItemName)
	assert.Equal(t, "Unknown", saved.created[0].Website)
}
