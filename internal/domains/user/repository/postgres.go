package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/domains/user/model"
)

// postgresRepository implements user.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new user repository instance
func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts a new user with database-generated ID and timestamp
func (r *postgresRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
        INSERT INTO users (username, first_name, last_name)
        VALUES ($1, $2, $3)
        RETURNING id, username, first_name, last_name, created_at
    `

	var created model.User
	err := r.pool.QueryRow(
		ctx,
		query,
		u.Username,
		u.FirstName,
		u.LastName,
	).Scan(
		&created.ID,
		&created.Username,
		&created.FirstName,
		&created.LastName,
		&created.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, user.ErrDuplicateUsername
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a user by UUID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
        SELECT id, username, first_name, last_name, created_at
        FROM users
        WHERE id = $1
    `

	var u model.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}
