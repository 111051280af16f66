package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/domains/post/model"
	"blog-backend/pkg/database"
)

// postgresRepository implements post.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new post repository instance
func NewPostgresRepository(pool *pgxpool.Pool) post.Repository {
	return &postgresRepository{pool: pool}
}

// CreateWithTags inserts the post row and its tag associations in one
// transaction. The (post_id, tag) primary key plus ON CONFLICT keeps
// the association a set even when the request repeats a tag.
func (r *postgresRepository) CreateWithTags(ctx context.Context, p *model.Post, tags []string) (*model.Post, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.Post, error) {
		insertPost := `
            INSERT INTO posts (title, body, created_by)
            VALUES ($1, $2, $3)
            RETURNING id, title, body, created_by, created_at
        `

		var created model.Post
		err := tx.QueryRow(
			ctx,
			insertPost,
			p.Title,
			p.Body,
			p.CreatedBy,
		).Scan(
			&created.ID,
			&created.Title,
			&created.Body,
			&created.CreatedBy,
			&created.CreatedAt,
		)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				if pgErr.Code == "23503" { // foreign_key_violation
					return nil, post.ErrAuthorNotFound
				}
			}
			return nil, fmt.Errorf("failed to create post: %w", err)
		}

		insertTag := `
            INSERT INTO posts_tags (post_id, tag)
            VALUES ($1, $2)
            ON CONFLICT (post_id, tag) DO NOTHING
        `

		for _, tag := range tags {
			if _, err := tx.Exec(ctx, insertTag, created.ID, tag); err != nil {
				return nil, fmt.Errorf("failed to create post tag: %w", err)
			}
		}

		return &created, nil
	})
}

// buildListQueries composes the count and data SQL for a plan. Both
// share the plan's predicate verbatim so they describe the same
// filtered set.
//
// Both joins are OUTER on purpose: posts with no author or no tags
// must stay in the result. The data query's inner subquery pages over
// distinct qualifying posts so LIMIT/OFFSET count posts rather than
// fan-out rows; the outer query re-joins the selected page to author
// and tags and yields the flat row set the fold consumes.
func buildListQueries(plan post.QueryPlan) (countQuery, dataQuery string, dataArgs []any) {
	where := ""
	if plan.Where != "" {
		where = "WHERE " + plan.Where
	}

	countQuery = fmt.Sprintf(`
        SELECT COUNT(DISTINCT p.id)
        FROM posts p
        LEFT JOIN users u ON p.created_by = u.id
        LEFT JOIN posts_tags pt ON pt.post_id = p.id
        %s
    `, where)

	dataQuery = fmt.Sprintf(`
        SELECT
            p.id, p.title, p.body, p.created_at, p.created_by,
            u.id, u.username, u.first_name, u.last_name,
            pt.tag
        FROM (
            SELECT p.id
            FROM posts p
            LEFT JOIN users u ON p.created_by = u.id
            LEFT JOIN posts_tags pt ON pt.post_id = p.id
            %s
            GROUP BY p.id
            ORDER BY %s
            LIMIT $%d OFFSET $%d
        ) sel
        JOIN posts p ON p.id = sel.id
        LEFT JOIN users u ON p.created_by = u.id
        LEFT JOIN posts_tags pt ON pt.post_id = p.id
        ORDER BY %s
    `, where, plan.OrderBy, len(plan.Args)+1, len(plan.Args)+2, plan.OrderBy)

	dataArgs = append(append([]any{}, plan.Args...), plan.Limit, plan.Offset)

	return countQuery, dataQuery, dataArgs
}

// List executes the planned aggregated read: a distinct-post count
// and one flat outer-join query, exactly two queries inside a single
// read-only snapshot so the total and the page cannot drift apart.
// The flat result is folded client-side; no per-row follow-up queries.
func (r *postgresRepository) List(ctx context.Context, plan post.QueryPlan) ([]model.ListedPost, int64, error) {
	countQuery, dataQuery, dataArgs := buildListQueries(plan)

	var flat []listedRow
	var total int64

	err := database.WithReadOnlySnapshot(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, countQuery, plan.Args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count posts: %w", err)
		}

		rows, err := tx.Query(ctx, dataQuery, dataArgs...)
		if err != nil {
			return fmt.Errorf("failed to query posts: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row listedRow
			if err := rows.Scan(
				&row.ID,
				&row.Title,
				&row.Body,
				&row.CreatedAt,
				&row.CreatedBy,
				&row.UserID,
				&row.Username,
				&row.FirstName,
				&row.LastName,
				&row.Tag,
			); err != nil {
				return fmt.Errorf("failed to scan post row: %w", err)
			}
			flat = append(flat, row)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating post rows: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	records, err := foldRows(flat)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
