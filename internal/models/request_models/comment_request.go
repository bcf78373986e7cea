package request_models

import "github.com/google/uuid"

type CreateCommentRequest struct {
	Content  string     `json:"content" binding:"required,min=1"`
	PostID   uuid.UUID  `json:"post" binding:"required"`
	ParentID *uuid.UUID `json:"parent"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}
