package db_models

import (
	"github.com/google/uuid"
)

// PinnedPost holds the single pin slot of an account. The unique index on
// AccountID is the authoritative guard against double pins.
type PinnedPost struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`
	PostID    uuid.UUID `gorm:"index"`
	PinnedAt  int64     `gorm:"not null"`

	Account Account `gorm:"foreignKey:AccountID"`
	Post    Post    `gorm:"foreignKey:PostID"`
}
