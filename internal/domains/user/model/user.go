package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can author posts. Users are created once and
// never mutated; the listing engine only reads them.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
