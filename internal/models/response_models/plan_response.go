package response_models

import "github.com/google/uuid"

type PlanResponse struct {
	ID           uuid.UUID              `json:"id"`
	Code         string                 `json:"code"`
	Name         string                 `json:"name"`
	Description  *string                `json:"description,omitempty"`
	Price        int64                  `json:"price"` // minor units
	Currency     string                 `json:"currency"`
	DurationDays int32                  `json:"duration_days"`
	Features     map[string]interface{} `json:"features"`
	IsActive     bool                   `json:"is_active"`
	CreatedAt    int64                  `json:"created_at"`
}
