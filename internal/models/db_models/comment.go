package db_models

import (
	"github.com/google/uuid"
)

// Comment supports one level of threading through ParentID. Deletion is soft:
// IsActive is flipped off and the row stays for reply chains.
type Comment struct {
	BaseModel
	Content  string    `gorm:"not null"`
	PostID   uuid.UUID `gorm:"index"`
	AuthorID uuid.UUID `gorm:"index"`
	ParentID *uuid.UUID `gorm:"index"`
	IsActive bool      `gorm:"default:true"`

	Post    Post      `gorm:"foreignKey:PostID"`
	Author  Account   `gorm:"foreignKey:AuthorID"`
	Parent  *Comment  `gorm:"foreignKey:ParentID"`
	Replies []Comment `gorm:"foreignKey:ParentID"`
}
