package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/domains/user/model"
)

// userService implements user.Service
type userService struct {
	repo user.Repository
}

// NewUserService creates a new user service instance.
// Service depends on the Repository abstraction, not a concrete type,
// so it can be tested against a mock store.
func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *user.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newUser := &model.User{
		Username:  strings.TrimSpace(req.Username),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}

	return s.repo.Create(ctx, newUser)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if id == uuid.Nil {
		return nil, user.ErrUserNotFound
	}

	return s.repo.GetByID(ctx, id)
}
