package models

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseCategory string

const (
	CategoryFood          PurchaseCategory = "food"
	CategoryFashion       PurchaseCategory = "fashion"
	CategoryEntertainment PurchaseCategory = "entertainment"
	CategoryTransport     PurchaseCategory = "transport"
	CategoryTravel        PurchaseCategory = "travel"
	CategoryLiving        PurchaseCategory = "living"
	CategoryOther         PurchaseCategory = "other"
)

// ValidCategories lists every category the classifier may assign.
var ValidCategories = []PurchaseCategory{
	CategoryFood,
	CategoryFashion,
	CategoryEntertainment,
	CategoryTransport,
	CategoryTravel,
	CategoryLiving,
	CategoryOther,
}

func ValidCategory(c PurchaseCategory) bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}

type Purchase struct {
	ID           uuid.UUID        `db:"id"`
	UserID       uuid.UUID        `db:"user_id"`
	ItemName     string           `db:"item_name"`
	Price        float64          `db:"price"`
	Currency     string           `db:"currency"`
	Category     PurchaseCategory `db:"category"`
	Website      string           `db:"website"`
	URL          string           `db:"url"`
	Description  string           `db:"description"`
	PurchaseDate time.Time        `db:"purchase_date"`
	CreatedAt    time.Time        `db:"created_at"`
}
