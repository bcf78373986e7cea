package response_models

import "github.com/google/uuid"

type CommentResponse struct {
	ID           uuid.UUID   `json:"id"`
	Content      string      `json:"content"`
	Author       *AuthorInfo `json:"author_info,omitempty"`
	PostID       uuid.UUID   `json:"post"`
	ParentID     *uuid.UUID  `json:"parent,omitempty"`
	IsReply      bool        `json:"is_reply"`
	RepliesCount int64       `json:"replies_count"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    int64       `json:"created_at"`
	UpdatedAt    int64       `json:"updated_at"`
}

type PostRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
}

type PostCommentsResponse struct {
	Post          PostRef           `json:"post"`
	Comments      []CommentResponse `json:"comments"`
	CommentsCount int64             `json:"comments_count"`
}

type CommentRepliesResponse struct {
	Parent       CommentResponse   `json:"parent_comment"`
	Replies      []CommentResponse `json:"replies"`
	RepliesCount int64             `json:"replies_count"`
}
