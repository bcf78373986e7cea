package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type HistoryAction string

const (
	HistoryCreated   HistoryAction = "created"
	HistoryActivated HistoryAction = "activated"
	HistoryRenewed   HistoryAction = "renewed"
	HistoryExpired   HistoryAction = "expired"
	HistoryCancelled HistoryAction = "cancelled"
)

// SubscriptionHistory rows are append-only: written once per lifecycle
// transition, never updated or deleted.
type SubscriptionHistory struct {
	BaseModel
	SubscriptionID uuid.UUID     `gorm:"index"`
	Action         HistoryAction `gorm:"type:varchar(20);index"`
	Description    string

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Subscription Subscription `gorm:"foreignKey:SubscriptionID"`
}
