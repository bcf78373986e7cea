package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

type Post struct {
	BaseModel
	Title      string `gorm:"not null"`
	Slug       string `gorm:"uniqueIndex;not null"`
	Content    string
	Image      string
	Tags       pq.StringArray `gorm:"type:text[]"`
	CategoryID *uuid.UUID     `gorm:"index"`
	AuthorID   uuid.UUID      `gorm:"index"`
	Status     PostStatus     `gorm:"type:varchar(20);index;default:draft"`
	ViewsCount int64          `gorm:"default:0"`

	Author   Account   `gorm:"foreignKey:AuthorID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Comments []Comment `gorm:"foreignKey:PostID"`
}
