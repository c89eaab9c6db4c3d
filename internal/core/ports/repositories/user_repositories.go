package repositories

import (
	"context"

	"github.com/bizdesk/business_management_app/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	// SaveUser inserts a new user record.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by primary key.
	// Returns apperrors.ErrNotFound if no such user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email (the login identifier).
	// Returns apperrors.ErrNotFound if no such user exists.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
