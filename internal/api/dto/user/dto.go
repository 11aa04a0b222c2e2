package user

import (
	review "reviewmap_backend/internal/api/dto/review"
)

type UserResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ProfileResponse struct {
	ID      int                                `json:"id"`
	Email   string                             `json:"email"`
	Name    string                             `json:"name"`
	Reviews []review.ReviewWithAddressResponse `json:"reviews"`
}

type DeleteUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
