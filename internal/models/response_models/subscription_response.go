package response_models

import "github.com/google/uuid"

type SubscriptionResponse struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"user"`
	PlanID        uuid.UUID     `json:"plan"`
	PlanInfo      *PlanResponse `json:"plan_info,omitempty"`
	Status        string        `json:"status"`
	StartsAt      int64         `json:"start_date"`
	EndsAt        int64         `json:"end_date"`
	DaysRemaining int           `json:"days_remaining"`
	AutoRenew     bool          `json:"auto_renew"`
	IsActive      bool          `json:"is_active"`
	CreatedAt     int64         `json:"created_at"`
	UpdatedAt     int64         `json:"updated_at"`
}

type PinnedPostResponse struct {
	ID       uuid.UUID    `json:"id"`
	PostID   uuid.UUID    `json:"post"`
	PostInfo *PostSummary `json:"post_info,omitempty"`
	PinnedAt int64        `json:"pinned_at"`
}

// SubscriptionStatusResponse is the composite view assembled from one clock
// reading so entitlement cannot flip between its sub-fields.
type SubscriptionStatusResponse struct {
	HasSubscription bool                  `json:"has_subscription"`
	IsActive        bool                  `json:"is_active"`
	Subscription    *SubscriptionResponse `json:"subscription"`
	PinnedPost      *PinnedPostResponse   `json:"pinned_post"`
	CanPinPosts     bool                  `json:"can_pin_posts"`
}

type HistoryEntryResponse struct {
	ID          uuid.UUID              `json:"id"`
	Action      string                 `json:"action"`
	Description string                 `json:"description"`
	Metadata    map[string]interface{} `json:"metadata"`
	CreatedAt   int64                  `json:"created_at"`
}
