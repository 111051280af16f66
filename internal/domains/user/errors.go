package user

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("user with this username already exists")
)

// ToHTTPStatus converts a domain error to an HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateUsername):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ToErrorCode converts a domain error to an API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrDuplicateUsername):
		return "DUPLICATE_USERNAME"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
