package user

import (
	"context"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user/model"
)

// Service defines the User business logic interface
type Service interface {
	Create(ctx context.Context, req *CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
