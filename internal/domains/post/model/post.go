package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is the stored row. CreatedBy is nil for system posts, content
// not attributed to any user. That case is modeled with a pointer, not
// a sentinel UUID, so it can never be confused with a broken reference.
type Post struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Body      string     `json:"body" db:"body"`
	CreatedBy *uuid.UUID `json:"created_by" db:"created_by"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Author is the user sub-object embedded in a listed post.
type Author struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// ListedPost is the aggregated listing shape: a post joined to its
// optional author and its deduplicated tag set. CreatedBy marshals to
// an explicit null for system posts; Tags is always a non-nil slice so
// an untagged post serializes as [].
type ListedPost struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedBy *Author   `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []string  `json:"tags"`
}
