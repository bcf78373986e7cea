package db_models

import (
	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubStatusPending   SubscriptionStatus = "pending"
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusExpired   SubscriptionStatus = "expired"
	SubStatusCancelled SubscriptionStatus = "cancelled"
)

// IsTerminal reports whether no further transition is possible from this status.
// A user may only subscribe again once their current subscription is terminal.
func (s SubscriptionStatus) IsTerminal() bool {
	return s == SubStatusExpired || s == SubStatusCancelled
}

type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	PlanID    uuid.UUID `gorm:"index"`

	Status    SubscriptionStatus `gorm:"type:varchar(20);index"`
	StartsAt  int64              `gorm:"not null"`
	EndsAt    int64              `gorm:"not null"`
	AutoRenew bool               `gorm:"default:false"`

	Account Account `gorm:"foreignKey:AccountID"`
	Plan    Plan    `gorm:"foreignKey:PlanID"`
}
