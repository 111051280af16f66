package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-backend/internal/domains/post"
	"blog-backend/internal/shared/response"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{service: svc}
}

// Create handles POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	var req post.CreatePostRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var vErrs validation.Errors
		switch {
		case errors.As(err, &vErrs):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid post data", vErrs)
		case errors.Is(err, post.ErrAuthorNotFound):
			response.UnprocessableEntity(c, err.Error())
		default:
			response.InternalServerError(c, "failed to create post")
		}
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// List handles GET /posts?page=&per_page=&search=
//
// Out-of-range or malformed paging values are normalized, never
// rejected; the only failures this endpoint can produce come from the
// store itself.
func (h *PostHandler) List(c *gin.Context) {
	page, _ := strconv.ParseInt(c.Query("page"), 10, 64)
	perPage, _ := strconv.ParseInt(c.Query("per_page"), 10, 64)
	search := c.Query("search")

	query := post.NewListQuery(page, perPage, search)

	result, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, post.ErrAuthorIntegrity) {
			// Corrupt author reference: distinct from an ordinary
			// data-access failure so operators can tell them apart.
			response.ErrorResponse(c, http.StatusInternalServerError, post.ToErrorCode(err), err.Error())
			return
		}
		response.InternalServerError(c, "failed to fetch posts")
		return
	}

	response.Success(c, http.StatusOK, result)
}
