package post

import (
	"context"

	"blog-backend/internal/domains/post/model"
)

// Repository defines the interface for Post data access operations
type Repository interface {
	// CreateWithTags inserts a post and its tag associations as one
	// atomic unit: the post and its initial tags become visible to the
	// listing engine together or not at all.
	// Errors: ErrAuthorNotFound if created_by references no user.
	CreateWithTags(ctx context.Context, p *model.Post, tags []string) (*model.Post, error)

	// List executes the planned aggregated read: one count of distinct
	// qualifying posts and one flat join query folded into ListedPost
	// records, both under the plan's predicate and inside the same
	// read snapshot. Returns the page of records in plan order plus
	// the distinct-post total.
	// Errors: ErrAuthorIntegrity if a post's author row is missing.
	List(ctx context.Context, plan QueryPlan) ([]model.ListedPost, int64, error)
}
