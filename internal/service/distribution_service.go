package service

import (
	"context"
	"time"

	"spendguard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SavedItemMeta describes the purchase the user walked away from.
type SavedItemMeta struct {
	ItemName    string
	Website     string
	URL         string
	Description string
}

// GoalAllocation records how one goal changed during a distribution.
type GoalAllocation struct {
	Goal           *models.Goal
	PreviousAmount float64
	AmountAdded    float64
}

// DistributionResult is what a successful distribution returns: the audit
// record plus every goal that received money.
type DistributionResult struct {
	Method        models.DistributionMethod
	TotalAmount   float64
	SavedPurchase *models.SavedPurchase
	Allocations   []GoalAllocation
}

// DistributionService allocates an avoided purchase amount across the
// user's savings and custom goals and writes a SavedPurchase audit record.
//
// Goal updates and the audit insert are sequential, independent writes with
// no transaction, matching the store's find/update contract. A failure
// mid-loop propagates and leaves the earlier goal updates in place.
type DistributionService struct {
	goals  GoalStore
	saved  SavedPurchaseStore
	logger *zap.Logger
}

func NewDistributionService(goals GoalStore, saved SavedPurchaseStore, logger *zap.Logger) *DistributionService {
	return &DistributionService{
		goals:  goals,
		saved:  saved,
		logger: logger,
	}
}

// Distribute splits amount across the user's eligible goals using the given
// method and records the saved purchase. An empty method means equal.
func (s *DistributionService) Distribute(
	ctx context.Context,
	userID uuid.UUID,
	amount float64,
	method models.DistributionMethod,
	meta SavedItemMeta,
) (*DistributionResult, error) {
	if amount <= 0 {
		return nil, NewValidationError("Amount must be a positive number")
	}
	if method == "" {
		method = models.DistributionEqual
	}
	if !models.ValidDistributionMethod(method) {
		return nil, NewValidationError("distribution must be one of: equal, proportional, priority")
	}

	// Daily spending goals are limits, not targets; only savings and
	// custom goals receive money.
	goals, err := s.goals.ListByUserAndTypes(ctx, userID, []models.GoalType{
		models.GoalTypeSavings,
		models.GoalTypeCustom,
	})
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, ErrNoSavingsGoals
	}

	allocations, err := allocate(goals, amount, method)
	if err != nil {
		return nil, err
	}

	goalIDs := make([]string, 0, len(allocations))
	for i := range allocations {
		alloc := &allocations[i]
		if err := s.goals.AddToCurrentAmount(ctx, alloc.Goal.ID, alloc.AmountAdded); err != nil {
			return nil, err
		}
		alloc.Goal.CurrentAmount = alloc.PreviousAmount + alloc.AmountAdded
		goalIDs = append(goalIDs, alloc.Goal.ID.String())
	}

	itemName := meta.ItemName
	if itemName == "" {
		itemName = "Unknown Item"
	}
	website := meta.Website
	if website == "" {
		website = "Unknown"
	}

	now := time.Now()
	savedPurchase := &models.SavedPurchase{
		ID:                 uuid.New(),
		UserID:             userID,
		ItemName:           itemName,
		AmountSaved:        amount,
		Currency:           "USD",
		Website:            website,
		URL:                meta.URL,
		Description:        meta.Description,
		SavedDate:          now,
		DistributionMethod: method,
		GoalsUpdated:       goalIDs,
		CreatedAt:          now,
	}

	if err := s.saved.Create(ctx, savedPurchase); err != nil {
		return nil, err
	}

	s.logger.Info("Savings distributed",
		zap.String("user_id", userID.String()),
		zap.Float64("amount", amount),
		zap.String("method", string(method)),
		zap.Int("goals_updated", len(goalIDs)),
	)

	return &DistributionResult{
		Method:        method,
		TotalAmount:   amount,
		SavedPurchase: savedPurchase,
		Allocations:   allocations,
	}, nil
}

// allocate computes per-goal amounts without touching storage. Only goals
// that receive a nonzero amount appear in the result.
func allocate(goals []*models.Goal, amount float64, method models.DistributionMethod) ([]GoalAllocation, error) {
	switch method {
	case models.DistributionPriority:
		for _, goal := range goals {
			if goal.IsDefault {
				return []GoalAllocation{{
					Goal:           goal,
					PreviousAmount: goal.CurrentAmount,
					AmountAdded:    amount,
				}}, nil
			}
		}
		// No default goal, fall back to an equal split.
		return splitEqually(goals, amount), nil

	case models.DistributionProportional:
		var totalTarget float64
		for _, goal := range goals {
			totalTarget += goal.TargetAmount
		}
		if totalTarget == 0 {
			return nil, NewValidationError("no target amounts to distribute against")
		}

		allocations := make([]GoalAllocation, 0, len(goals))
		for _, goal := range goals {
			share := amount * (goal.TargetAmount / totalTarget)
			if share == 0 {
				continue
			}
			allocations = append(allocations, GoalAllocation{
				Goal:           goal,
				PreviousAmount: goal.CurrentAmount,
				AmountAdded:    share,
			})
		}
		return allocations, nil

	default:
		return splitEqually(goals, amount), nil
	}
}

func splitEqually(goals []*models.Goal, amount float64) []GoalAllocation {
	amountPerGoal := amount / float64(len(goals))
	allocations := make([]GoalAllocation, 0, len(goals))
	for _, goal := range goals {
		allocations = append(allocations, GoalAllocation{
			Goal:           goal,
			PreviousAmount: goal.CurrentAmount,
			AmountAdded:    amountPerGoal,
		})
	}
	return allocations
}
