package request_models

import "github.com/google/uuid"

type CreatePostRequest struct {
	Title      string     `json:"title" binding:"required,min=3,max=200"`
	Content    string     `json:"content" binding:"required"`
	Image      string     `json:"image"`
	Tags       []string   `json:"tags"`
	CategoryID *uuid.UUID `json:"category_id"`
	Status     string     `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdatePostRequest struct {
	Title      *string    `json:"title" binding:"omitempty,min=3,max=200"`
	Content    *string    `json:"content"`
	Image      *string    `json:"image"`
	Tags       []string   `json:"tags"`
	CategoryID *uuid.UUID `json:"category_id"`
	Status     *string    `json:"status" binding:"omitempty,oneof=draft published archived"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description *string `json:"description"`
}
