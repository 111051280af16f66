package post

import (
	"context"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/shared/pagination"
)

// ListResult is the success payload of the listing endpoint.
type ListResult struct {
	Records []model.ListedPost `json:"records"`
	Meta    pagination.Meta    `json:"meta"`
}

// Service defines the Post business logic interface
type Service interface {
	Create(ctx context.Context, req *CreatePostRequest) (*model.Post, error)
	List(ctx context.Context, q ListQuery) (*ListResult, error)
}
