package request_models

type CreatePlanRequest struct {
	Code         string                 `json:"code" binding:"required,min=2,max=50"`
	Name         string                 `json:"name" binding:"required,min=2,max=100"`
	Description  *string                `json:"description"`
	PriceMinor   int64                  `json:"price" binding:"min=0"`
	Currency     string                 `json:"currency" binding:"required,len=3"`
	DurationDays int32                  `json:"duration_days" binding:"required,min=1"`
	Features     map[string]interface{} `json:"features"`
}

type UpdatePlanRequest struct {
	Name        *string                `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string                `json:"description"`
	PriceMinor  *int64                 `json:"price" binding:"omitempty,min=0"`
	IsActive    *bool                  `json:"is_active"`
	Features    map[string]interface{} `json:"features"`
}
