package service

import (
	"context"
	"strings"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/shared/pagination"
)

// postService implements post.Service
type postService struct {
	repo post.Repository
}

// NewPostService creates a new post service instance
func NewPostService(repo post.Repository) post.Service {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, req *post.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	newPost := &model.Post{
		Title:     strings.TrimSpace(req.Title),
		Body:      req.Body,
		CreatedBy: req.CreatedBy,
	}

	tags := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	return s.repo.CreateWithTags(ctx, newPost, tags)
}

// List runs the planned aggregated read and attaches pagination
// metadata. The requested page is echoed in the metadata even when it
// lies past the last page; the record set is then simply empty.
func (s *postService) List(ctx context.Context, q post.ListQuery) (*post.ListResult, error) {
	records, total, err := s.repo.List(ctx, q.Plan())
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []model.ListedPost{}
	}

	return &post.ListResult{
		Records: records,
		Meta:    pagination.Calculate(total, q.Page, q.PerPage),
	}, nil
}
