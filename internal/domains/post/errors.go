package post

import (
	"errors"
	"net/http"
)

var (
	// ErrAuthorNotFound is a write-path error: the created_by in a
	// create request does not reference an existing user.
	ErrAuthorNotFound = errors.New("post author does not exist")

	// ErrAuthorIntegrity is a read-path error: a stored post carries a
	// non-null author reference but the user row is gone. This is
	// upstream corruption and is never downgraded to "system post".
	ErrAuthorIntegrity = errors.New("post references a user that does not exist")
)

// ToHTTPStatus converts a domain error to an HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorCode converts a domain error to an API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrAuthorIntegrity):
		return "DATA_INTEGRITY"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
