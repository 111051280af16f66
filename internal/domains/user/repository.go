package user

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user/model"
)

// Repository defines the interface for User data access operations
type Repository interface {
	// Create inserts a new user and returns the stored row
	// (ID and created_at are assigned by the database).
	// Errors: ErrDuplicateUsername if the username is taken.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// GetByID retrieves a user by UUID.
	// Errors: ErrUserNotFound if not exists.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
