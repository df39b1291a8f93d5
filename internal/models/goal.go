package models

import (
	"time"

	"github.com/google/uuid"
)

type GoalType string

const (
	GoalTypeDailySpending GoalType = "daily_spending"
	GoalTypeSavings       GoalType = "savings"
	GoalTypeCustom        GoalType = "custom"
)

type GoalPeriod string

const (
	PeriodDaily   GoalPeriod = "daily"
	PeriodWeekly  GoalPeriod = "weekly"
	PeriodMonthly GoalPeriod = "monthly"
	PeriodYearly  GoalPeriod = "yearly"
	PeriodOneTime GoalPeriod = "one_time"
)

// Goal is a financial target. For daily_spending goals TargetAmount is the
// spending limit; for savings goals it is the amount to save up.
// At most one goal per user has IsDefault set.
type Goal struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	Name          string     `db:"name"`
	Type          GoalType   `db:"type"`
	TargetAmount  float64    `db:"target_amount"`
	CurrentAmount float64    `db:"current_amount"`
	Period        GoalPeriod `db:"period"`
	IsDefault     bool       `db:"is_default"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func ValidGoalType(t GoalType) bool {
	switch t {
	case GoalTypeDailySpending, GoalTypeSavings, GoalTypeCustom:
		return true
	}
	return false
}

func ValidGoalPeriod(p GoalPeriod) bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly, PeriodOneTime:
		return true
	}
	return false
}
