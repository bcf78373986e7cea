package db_models

// Category groups posts; slug is derived from the name on create.
type Category struct {
	BaseModel
	Name        string `gorm:"unique;not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description *string

	Posts []Post `gorm:"foreignKey:CategoryID"`
}
