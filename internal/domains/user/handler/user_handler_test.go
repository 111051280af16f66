package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/domains/user/model"
)

type fakeService struct {
	createErr error
	byID      *model.User
	byIDErr   error
}

func (f *fakeService) Create(_ context.Context, req *user.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.User{
		ID:        uuid.New(),
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}, nil
}

func (f *fakeService) GetByID(_ context.Context, _ uuid.UUID) (*model.User, error) {
	return f.byID, f.byIDErr
}

func newTestRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewUserHandler(svc)
	router.POST("/users", h.Create)
	router.GET("/users/:id", h.GetByID)
	return router
}

func TestCreateUser(t *testing.T) {
	router := newTestRouter(&fakeService{})

	payload := `{"username":"jdoe","first_name":"Jane","last_name":"Doe"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"jdoe"`)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	router := newTestRouter(&fakeService{createErr: user.ErrDuplicateUsername})

	payload := `{"username":"jdoe","first_name":"Jane","last_name":"Doe"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateUserValidationError(t *testing.T) {
	router := newTestRouter(&fakeService{})

	payload := `{"username":"ab"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestGetUserByIDInvalidUUID(t *testing.T) {
	router := newTestRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserByIDNotFound(t *testing.T) {
	router := newTestRouter(&fakeService{byIDErr: user.ErrUserNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
