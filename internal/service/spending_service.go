package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"spendguard/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const roastAction = "if it is responsible or within budget, please say approved. " +
	"if it is irresponsible, please roast me and stop me from buying it in 5 lines."

// SpendingEvaluation is the verdict on a candidate purchase against the
// user's daily spending limit.
type SpendingEvaluation struct {
	CanPurchase     bool
	IsOverspending  bool
	DailyLimit      float64
	SpentToday      float64
	Remaining       float64
	NewTotal        float64
	OverspendAmount float64
	RoastMessage    string
	Message         string
}

// SpendingService checks candidate purchases against the user's default
// daily spending goal by summing the current day's purchase records.
type SpendingService struct {
	goals     GoalStore
	purchases PurchaseStore
	generator TextGenerator
	logger    *zap.Logger
}

func NewSpendingService(goals GoalStore, purchases PurchaseStore, generator TextGenerator, logger *zap.Logger) *SpendingService {
	return &SpendingService{
		goals:     goals,
		purchases: purchases,
		generator: generator,
		logger:    logger,
	}
}

// EvaluatePurchase decides whether buying itemName at price would push the
// user over today's limit. The allow/deny verdict never depends on the text
// generator; the roast message falls back to a local template when the
// generator fails.
func (s *SpendingService) EvaluatePurchase(ctx context.Context, userID uuid.UUID, itemName string, price float64) (*SpendingEvaluation, error) {
	if itemName == "" {
		return nil, NewValidationError("Missing required fields: user_id, item_name, price")
	}
	if price < 0 {
		return nil, NewValidationError("Price must be a positive number")
	}

	dailyGoal, err := s.goals.GetDefaultDailySpendingGoal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if dailyGoal == nil {
		// No limit configured, nothing to enforce.
		return &SpendingEvaluation{
			CanPurchase: true,
			NewTotal:    price,
			Message:     "No spending goal set",
		}, nil
	}

	startOfDay, endOfDay := dayWindow(time.Now())
	todaysPurchases, err := s.purchases.ListBetween(ctx, userID, startOfDay, endOfDay)
	if err != nil {
		return nil, err
	}

	var spentToday float64
	for _, purchase := range todaysPurchases {
		spentToday += purchase.Price
	}

	dailyLimit := dailyGoal.TargetAmount
	newTotal := spentToday + price
	// Strict comparison: landing exactly on the limit is still allowed.
	isOverspending := newTotal > dailyLimit

	evaluation := &SpendingEvaluation{
		CanPurchase:    !isOverspending,
		IsOverspending: isOverspending,
		DailyLimit:     dailyLimit,
		SpentToday:     spentToday,
		Remaining:      dailyLimit - spentToday,
		NewTotal:       newTotal,
		Message:        "Purchase is within your daily spending limit",
	}

	if isOverspending {
		evaluation.OverspendAmount = newTotal - dailyLimit
		evaluation.Message = "This purchase would exceed your daily spending limit"
		evaluation.RoastMessage = s.roast(ctx, userID, itemName, price, dailyLimit, newTotal)
	}

	return evaluation, nil
}

// roast asks the generator for a dissuasive message, falling back to a
// deterministic template built from the computed numbers.
func (s *SpendingService) roast(ctx context.Context, userID uuid.UUID, itemName string, price, dailyLimit, newTotal float64) string {
	prompt, err := s.buildRoastPrompt(ctx, userID, itemName, price, dailyLimit)
	if err == nil {
		message, genErr := s.generator.Generate(ctx, prompt)
		if genErr == nil && message != "" {
			return message
		}
		err = genErr
	}

	s.logger.Warn("Roast generation failed, using fallback message", zap.Error(err))
	return fmt.Sprintf(
		"You're about to spend $%.2f on %s, which would put you at $%.2f for today. Your daily limit is $%.2f. That's $%.2f over budget! Maybe reconsider this purchase?",
		price, itemName, newTotal, dailyLimit, newTotal-dailyLimit,
	)
}

func (s *SpendingService) buildRoastPrompt(ctx context.Context, userID uuid.UUID, itemName string, price, dailyLimit float64) (string, error) {
	savingsGoals, err := s.goals.ListByUserAndTypes(ctx, userID, []models.GoalType{models.GoalTypeSavings})
	if err != nil {
		return "", err
	}

	items := []string{fmt.Sprintf("%s for $%.2f", itemName, price)}

	goalLines := make([]string, 0, len(savingsGoals))
	for _, goal := range savingsGoals {
		goalLines = append(goalLines, fmt.Sprintf(
			"save $%s for %s by %s",
			strconv.FormatFloat(goal.TargetAmount, 'f', -1, 64),
			goal.Name,
			goal.Period,
		))
	}

	prompt := fmt.Sprintf(
		"I am buying %s. I have a budget of $%.2f left. and I have these goals: %s. %s",
		strings.Join(items, ","),
		dailyLimit,
		strings.Join(goalLines, ","),
		roastAction,
	)
	return prompt, nil
}

// dayWindow returns [local midnight, next local midnight) around t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
