package auth

import (
	user "reviewmap_backend/internal/api/dto/user"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string            `json:"message"`
	User    user.UserResponse `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

type RefreshResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}
