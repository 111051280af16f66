package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateUserRequest is the POST /users payload.
type CreateUserRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 50).Error("username must be 3-50 characters"),
		),
		validation.Field(&r.FirstName,
			validation.Required.Error("first_name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last_name is required"),
			validation.Length(1, 100),
		),
	)
}
