package dto

type CreateGoalRequest struct {
	Name          string  `json:"name" validate:"required"`
	Type          string  `json:"type" validate:"required,oneof=daily_spending savings custom"`
	TargetAmount  float64 `json:"target_amount" validate:"required,gte=0"`
	CurrentAmount float64 `json:"current_amount"`
	Period        string  `json:"period" validate:"required,oneof=daily weekly monthly yearly one_time"`
	IsDefault     bool    `json:"is_default"`
}

// UpdateGoalRequest uses pointers so absent fields stay untouched.
type UpdateGoalRequest struct {
	Name          *string  `json:"name"`
	TargetAmount  *float64 `json:"target_amount"`
	CurrentAmount *float64 `json:"current_amount"`
	IsDefault     *bool    `json:"is_default"`
}

type GoalResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Period        string  `json:"period"`
	IsDefault     bool    `json:"is_default"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type GoalListResponse struct {
	Success bool           `json:"success"`
	Goals   []GoalResponse `json:"goals"`
}

type GoalEnvelope struct {
	Success bool         `json:"success"`
	Goal    GoalResponse `json:"goal"`
	Message string       `json:"message"`
}

type ResetDailyResponse struct {
	Success    bool   `json:"success"`
	ResetCount int64  `json:"reset_count"`
	Message    string `json:"message"`
}
