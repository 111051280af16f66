package repository

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/post/model"
)

// listedRow is one row of the flat post × author × tag join. The user
// columns are nullable because the author join is outer; Tag is
// nullable because the tag join is outer. CreatedBy is the post's own
// reference column, separate from UserID so a missing user row can be
// told apart from a system post.
type listedRow struct {
	ID        uuid.UUID
	Title     string
	Body      string
	CreatedAt time.Time
	CreatedBy *uuid.UUID
	UserID    *uuid.UUID
	Username  *string
	FirstName *string
	LastName  *string
	Tag       *string
}

// foldRows groups the fan-out join result by post id in a single pass,
// preserving the first-seen post order. Within a group the author
// columns repeat, so the first row decides the author sub-object; tag
// values are collected into a set, and the NULL tag produced for an
// untagged post is discarded.
//
// A set CreatedBy with NULL user columns means the user row is gone:
// that is referential corruption, surfaced as ErrAuthorIntegrity and
// never mapped to "no author".
func foldRows(rows []listedRow) ([]model.ListedPost, error) {
	posts := make([]model.ListedPost, 0, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	seenTags := make(map[uuid.UUID]map[string]struct{}, len(rows))

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			listed := model.ListedPost{
				ID:        row.ID,
				Title:     row.Title,
				Body:      row.Body,
				CreatedAt: row.CreatedAt,
				Tags:      []string{},
			}

			if row.CreatedBy != nil {
				if row.UserID == nil {
					return nil, fmt.Errorf("%w: post %s references user %s",
						post.ErrAuthorIntegrity, row.ID, *row.CreatedBy)
				}
				listed.CreatedBy = &model.Author{
					UserID:    *row.UserID,
					Username:  deref(row.Username),
					FirstName: deref(row.FirstName),
					LastName:  deref(row.LastName),
				}
			}

			i = len(posts)
			posts = append(posts, listed)
			index[row.ID] = i
			seenTags[row.ID] = make(map[string]struct{})
		}

		if row.Tag == nil {
			continue
		}
		if _, dup := seenTags[row.ID][*row.Tag]; dup {
			continue
		}
		seenTags[row.ID][*row.Tag] = struct{}{}
		posts[i].Tags = append(posts[i].Tags, *row.Tag)
	}

	return posts, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
