package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/user"
	"blog-backend/internal/domains/user/model"
)

type fakeRepo struct {
	created   *model.User
	createErr error
	byID      *model.User
	byIDErr   error
}

func (f *fakeRepo) Create(_ context.Context, u *model.User) (*model.User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *u
	stored.ID = uuid.New()
	return &stored, nil
}

func (f *fakeRepo) GetByID(_ context.Context, _ uuid.UUID) (*model.User, error) {
	return f.byID, f.byIDErr
}

func TestCreateTrimsFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewUserService(repo)

	created, err := svc.Create(context.Background(), &user.CreateUserRequest{
		Username:  " jdoe ",
		FirstName: " Jane ",
		LastName:  " Doe ",
	})
	require.NoError(t, err)

	assert.Equal(t, "jdoe", created.Username)
	assert.Equal(t, "Jane", created.FirstName)
	assert.Equal(t, "Doe", created.LastName)
}

func TestCreateRejectsInvalidRequest(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), &user.CreateUserRequest{Username: "ab"})

	var vErrs validation.Errors
	require.ErrorAs(t, err, &vErrs)
	assert.Nil(t, repo.created)
}

func TestCreatePropagatesDuplicateUsername(t *testing.T) {
	svc := NewUserService(&fakeRepo{createErr: user.ErrDuplicateUsername})

	_, err := svc.Create(context.Background(), &user.CreateUserRequest{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
	})

	assert.ErrorIs(t, err, user.ErrDuplicateUsername)
}

func TestGetByIDNilUUID(t *testing.T) {
	svc := NewUserService(&fakeRepo{})

	_, err := svc.GetByID(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
