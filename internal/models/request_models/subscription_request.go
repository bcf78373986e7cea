package request_models

import "github.com/google/uuid"

type CreateSubscriptionRequest struct {
	PlanID    uuid.UUID `json:"plan_id" binding:"required"`
	AutoRenew bool      `json:"auto_renew"`
}

type PinPostRequest struct {
	PostID uuid.UUID `json:"post_id" binding:"required"`
}
