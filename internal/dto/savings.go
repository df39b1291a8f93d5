package dto

type DistributeSavingsRequest struct {
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Distribution string  `json:"distribution" validate:"omitempty,oneof=equal proportional priority"`
	ItemName     string  `json:"item_name"`
	Website      string  `json:"website"`
	URL          string  `json:"url"`
	Description  string  `json:"description"`
}

type UpdatedGoal struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	PreviousAmount     float64 `json:"previous_amount"`
	NewAmount          float64 `json:"new_amount"`
	AmountAdded        float64 `json:"amount_added"`
	TargetAmount       float64 `json:"target_amount"`
	ProgressPercentage string  `json:"progress_percentage"`
}

type DistributeSavingsResponse struct {
	Success            bool          `json:"success"`
	Message            string        `json:"message"`
	DistributionMethod string        `json:"distribution_method"`
	TotalAmount        float64       `json:"total_amount"`
	SavedPurchaseID    string        `json:"saved_purchase_id"`
	GoalsUpdated       []UpdatedGoal `json:"goals_updated"`
}

type SavedPurchaseResponse struct {
	ID                 string  `json:"id"`
	ItemName           string  `json:"item_name"`
	AmountSaved        float64 `json:"amount_saved"`
	Website            string  `json:"website"`
	URL                string  `json:"url,omitempty"`
	Description        string  `json:"description,omitempty"`
	SavedAt            string  `json:"saved_at"`
	DistributionMethod string  `json:"distribution_method,omitempty"`
}

type WebsiteSavingsBreakdown struct {
	Website          string   `json:"website"`
	PurchasesAvoided int      `json:"purchases_avoided"`
	TotalSaved       float64  `json:"total_saved"`
	TopItems         []string `json:"top_items,omitempty"`
}

type DailySavingsResponse struct {
	Success          bool                      `json:"success"`
	Date             string                    `json:"date"`
	TotalSaved       float64                   `json:"total_saved"`
	PurchasesAvoided int                       `json:"purchases_avoided"`
	ByWebsite        []WebsiteSavingsBreakdown `json:"by_website"`
	SavedPurchases   []SavedPurchaseResponse   `json:"saved_purchases"`
}

type SavingsPeriod struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      int    `json:"days"`
}

type BiggestSave struct {
	ItemName string  `json:"item_name"`
	Amount   float64 `json:"amount"`
	Website  string  `json:"website"`
	Date     string  `json:"date"`
}

type SavingsSummary struct {
	TotalSaved          float64      `json:"total_saved"`
	PurchasesAvoided    int          `json:"purchases_avoided"`
	AvgSavedPerDay      float64      `json:"avg_saved_per_day"`
	AvgSavedPerPurchase float64      `json:"avg_saved_per_purchase"`
	BiggestSave         *BiggestSave `json:"biggest_save"`
}

type DailyTrendPoint struct {
	Date             string  `json:"date"`
	TotalSaved       float64 `json:"total_saved"`
	PurchasesAvoided int     `json:"purchases_avoided"`
}

type SavingsBreakdown struct {
	ByWebsite  []WebsiteSavingsBreakdown `json:"by_website"`
	DailyTrend []DailyTrendPoint         `json:"daily_trend"`
}

type SavingsStatsResponse struct {
	Success     bool                    `json:"success"`
	Period      SavingsPeriod           `json:"period"`
	Summary     SavingsSummary          `json:"summary"`
	Breakdown   SavingsBreakdown        `json:"breakdown"`
	RecentSaves []SavedPurchaseResponse `json:"recent_saves"`
}
