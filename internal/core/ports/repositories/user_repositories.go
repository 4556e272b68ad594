package repositories

import (
	"context"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
)

// UserRepository defines persistence operations for portal users.
type UserRepository interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username, excluding soft-deleted users.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
