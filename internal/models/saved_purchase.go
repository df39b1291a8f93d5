package models

import (
	"time"

	"github.com/google/uuid"
)

type DistributionMethod string

const (
	DistributionEqual        DistributionMethod = "equal"
	DistributionProportional DistributionMethod = "proportional"
	DistributionPriority     DistributionMethod = "priority"
)

func ValidDistributionMethod(m DistributionMethod) bool {
	switch m {
	case DistributionEqual, DistributionProportional, DistributionPriority:
		return true
	}
	return false
}

// SavedPurchase is the audit record written when a user decides not to buy
// something and the avoided amount is distributed across their goals.
type SavedPurchase struct {
	ID                 uuid.UUID          `db:"id"`
	UserID             uuid.UUID          `db:"user_id"`
	ItemName           string             `db:"item_name"`
	AmountSaved        float64            `db:"amount_saved"`
	Currency           string             `db:"currency"`
	Website            string             `db:"website"`
	URL                string             `db:"url"`
	Description        string             `db:"description"`
	SavedDate          time.Time          `db:"saved_date"`
	DistributionMethod DistributionMethod `db:"distribution_method"`
	GoalsUpdated       []string           `db:"goals_updated"`
	CreatedAt          time.Time          `db:"created_at"`
}
