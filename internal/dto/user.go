package dto

import "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"

// LoginRequest carries local credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed actor token.
type LoginResponse struct {
	Token     string          `json:"token"`
	UserID    string          `json:"userID"`
	Name      string          `json:"name"`
	Role      domain.UserRole `json:"role"`
	ExpiresAt string          `json:"expiresAt"`
}

// CreateUserRequest registers a portal user.
type CreateUserRequest struct {
	Username string          `json:"username" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Role     domain.UserRole `json:"role" binding:"required"`
	Password string          `json:"password" binding:"required,min=8"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Role     domain.UserRole `json:"role"`
}
