package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var vErrs validation.Errors
		switch {
		case errors.As(err, &vErrs):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user data", vErrs)
		case errors.Is(err, user.ErrDuplicateUsername):
			response.Conflict(c, err.Error())
		default:
			response.InternalServerError(c, "failed to create user")
		}
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if user.ToHTTPStatus(err) == http.StatusNotFound {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, "failed to get user")
		}
		return
	}

	response.Success(c, http.StatusOK, u)
}
