package db_models

import (
	"gorm.io/datatypes"
)

type Plan struct {
	BaseModel
	Code         string `gorm:"uniqueIndex"` // e.g., "basic_monthly", "premium_yearly"
	Name         string
	Description  *string
	PriceMinor   int64  // 999 = $9.99
	Currency     string `gorm:"size:3"` // "USD", "EUR"
	DurationDays int32  `gorm:"not null"`
	IsActive     bool   `gorm:"default:true"`
	// Feature flags, e.g. {"pin_posts": true}
	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
