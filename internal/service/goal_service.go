package service

import (
	"context"
	"time"

	"spendguard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultGoalName   = "Daily Spending Limit"
	defaultDailyLimit = 100
)

// GoalService owns the goal ledger: listing, creation, the default-goal
// invariant and the daily reset.
//
// Default exclusivity is kept with two sequential writes (clear others, then
// set), so two concurrent requests marking different goals as default can
// race and leave zero or two defaults for a moment. Accepted trade-off; the
// next write repairs it.
type GoalService struct {
	goals  GoalStore
	logger *zap.Logger
}

func NewGoalService(goals GoalStore, logger *zap.Logger) *GoalService {
	return &GoalService{
		goals:  goals,
		logger: logger,
	}
}

type CreateGoalInput struct {
	Name          string
	Type          models.GoalType
	TargetAmount  float64
	CurrentAmount float64
	Period        models.GoalPeriod
	IsDefault     bool
}

// UpdateGoalInput carries optional field updates; nil means "leave as is".
type UpdateGoalInput struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	IsDefault     *bool
}

// ListGoals returns all of the user's goals, default first, newest first.
func (s *GoalService) ListGoals(ctx context.Context, userID uuid.UUID) ([]*models.Goal, error) {
	return s.goals.ListByUser(ctx, userID)
}

// CreateGoal validates and inserts a new goal. If the goal is marked
// default, every other default for the user is cleared first.
func (s *GoalService) CreateGoal(ctx context.Context, userID uuid.UUID, input CreateGoalInput) (*models.Goal, error) {
	if input.Name == "" || input.Type == "" || input.TargetAmount == 0 || input.Period == "" {
		return nil, NewValidationError("Missing required fields: name, type, target_amount, period")
	}
	if input.TargetAmount < 0 {
		return nil, NewValidationError("target_amount must be a positive number")
	}
	if !models.ValidGoalType(input.Type) {
		return nil, NewValidationError("type must be one of: daily_spending, savings, custom")
	}
	if !models.ValidGoalPeriod(input.Period) {
		return nil, NewValidationError("period must be one of: daily, weekly, monthly, yearly, one_time")
	}

	if input.IsDefault {
		if err := s.goals.ClearDefaults(ctx, userID, uuid.Nil); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	goal := &models.Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          input.Name,
		Type:          input.Type,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Period:        input.Period,
		IsDefault:     input.IsDefault,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("Goal created",
		zap.String("goal_id", goal.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("type", string(goal.Type)),
	)

	return goal, nil
}

// InitializeDefaultGoal seeds the $100/day spending limit for a new user.
// Idempotent: an existing default daily_spending goal is returned unchanged.
// The second return value reports whether a goal was created.
func (s *GoalService) InitializeDefaultGoal(ctx context.Context, userID uuid.UUID) (*models.Goal, bool, error) {
	existing, err := s.goals.GetDefaultDailySpendingGoal(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	now := time.Now()
	goal := &models.Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          defaultGoalName,
		Type:          models.GoalTypeDailySpending,
		TargetAmount:  defaultDailyLimit,
		CurrentAmount: 0,
		Period:        models.PeriodDaily,
		IsDefault:     true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, false, err
	}

	s.logger.Info("Default goal initialized", zap.String("user_id", userID.String()))
	return goal, true, nil
}

// UpdateGoal applies the provided fields to the user's goal.
func (s *GoalService) UpdateGoal(ctx context.Context, userID, goalID uuid.UUID, input UpdateGoalInput) (*models.Goal, error) {
	fields := make(map[string]interface{})
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.TargetAmount != nil {
		if *input.TargetAmount < 0 {
			return nil, NewValidationError("target_amount must be a positive number")
		}
		fields["target_amount"] = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		fields["current_amount"] = *input.CurrentAmount
	}
	if input.IsDefault != nil {
		fields["is_default"] = *input.IsDefault
		if *input.IsDefault {
			if err := s.goals.ClearDefaults(ctx, userID, goalID); err != nil {
				return nil, err
			}
		}
	}

	goal, err := s.goals.Update(ctx, userID, goalID, fields)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	return goal, nil
}

// ResetDailyGoals zeroes current_amount on daily spending goals and returns
// how many were reset. Meant to run at the start of each day.
func (s *GoalService) ResetDailyGoals(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.goals.ResetDaily(ctx, userID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Daily goals reset",
		zap.String("user_id", userID.String()),
		zap.Int64("count", count),
	)

	return count, nil
}
