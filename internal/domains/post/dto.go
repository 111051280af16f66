package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreatePostRequest is the POST /posts payload. CreatedBy is optional:
// absent means a system post. Tags may repeat; the store collapses
// them to a set.
type CreatePostRequest struct {
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedBy *uuid.UUID `json:"created_by"`
	Tags      []string   `json:"tags"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be 1-255 characters"),
		),
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
		),
		validation.Field(&r.Tags,
			validation.Each(
				validation.Required.Error("tag must not be empty"),
				validation.Length(1, 100).Error("tag must be 1-100 characters"),
			),
		),
	)
}
