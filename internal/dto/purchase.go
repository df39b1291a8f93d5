package dto

type AddPurchaseRequest struct {
	ItemName     string  `json:"item_name" validate:"required"`
	Price        float64 `json:"price" validate:"required,gte=0"`
	Currency     string  `json:"currency"`
	Website      string  `json:"website" validate:"required"`
	URL          string  `json:"url"`
	Description  string  `json:"description"`
	PurchaseDate string  `json:"purchase_date"`
}

type PurchaseResponse struct {
	ID           string  `json:"id"`
	ItemName     string  `json:"item_name"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Category     string  `json:"category"`
	Website      string  `json:"website"`
	URL          string  `json:"url,omitempty"`
	Description  string  `json:"description,omitempty"`
	PurchaseDate string  `json:"purchase_date"`
	CreatedAt    string  `json:"created_at"`
}

type AddPurchaseResponse struct {
	Success  bool             `json:"success"`
	Purchase PurchaseResponse `json:"purchase"`
	Message  string           `json:"message"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

type CategoryStats struct {
	TotalSpent float64 `json:"total_spent"`
	Count      int64   `json:"count"`
}

type PurchaseStatistics struct {
	TotalPurchases    int64                    `json:"total_purchases"`
	TotalSpent        float64                  `json:"total_spent"`
	CategoryBreakdown map[string]CategoryStats `json:"category_breakdown"`
}

type PurchaseListResponse struct {
	Success    bool               `json:"success"`
	Purchases  []PurchaseResponse `json:"purchases"`
	Pagination Pagination         `json:"pagination"`
	Statistics PurchaseStatistics `json:"statistics"`
}

type CheckSpendingRequest struct {
	ItemName string  `json:"item_name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type CheckSpendingResponse struct {
	Success         bool    `json:"success"`
	CanPurchase     bool    `json:"can_purchase"`
	IsOverspending  bool    `json:"is_overspending"`
	DailyLimit      float64 `json:"daily_limit"`
	SpentToday      float64 `json:"spent_today"`
	Remaining       float64 `json:"remaining"`
	NewTotal        float64 `json:"new_total"`
	OverspendAmount float64 `json:"overspend_amount"`
	RoastMessage    string  `json:"roast_message,omitempty"`
	Message         string  `json:"message"`
}

type CategorizeItem struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CategorizeRequest struct {
	Items []CategorizeItem `json:"items" validate:"required,min=1"`
}

type CategorizeResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}
