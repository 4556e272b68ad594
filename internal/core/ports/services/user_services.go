package services

import (
	"context"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/dto"
)

// UserSvcFacade covers user management and credential checks.
type UserSvcFacade interface {
	// CreateUser registers a new portal user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate verifies username/password and returns the user, or
	// apperrors.ErrUnauthorized on bad credentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
