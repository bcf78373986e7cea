package response_models

import "github.com/google/uuid"

type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt int64     `json:"created_at"`
}

// AuthorInfo is the denormalized author block embedded in post and comment views.
type AuthorInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
