package response_models

import "github.com/google/uuid"

type CategoryInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	PostsCount  int64     `json:"posts_count"`
	CreatedAt   int64     `json:"created_at"`
}

type PostResponse struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Content       string        `json:"content"`
	Image         string        `json:"image,omitempty"`
	Tags          []string      `json:"tags,omitempty"`
	Author        *AuthorInfo   `json:"author_info,omitempty"`
	Category      *CategoryInfo `json:"category_info,omitempty"`
	Status        string        `json:"status"`
	ViewsCount    int64         `json:"views_count"`
	CommentsCount int64         `json:"comments_count"`
	CreatedAt     int64         `json:"created_at"`
	UpdatedAt     int64         `json:"updated_at"`
}

// PostSummary is the denormalized post block embedded in the pinned post view.
type PostSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Image      string    `json:"image,omitempty"`
	ViewsCount int64     `json:"views_count"`
	CreatedAt  int64     `json:"created_at"`
}
