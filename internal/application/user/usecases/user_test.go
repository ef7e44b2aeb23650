package usecases

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
	apperrors "github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr.Code
}

func validProfile() user.Profile {
	return user.Profile{
		Email:       "Investor@GoldVault.test",
		PhoneNumber: "501234567",
		CountryCode: "+971",
		Country:     "UAE",
		FullName:    "Aisha Rahman",
	}
}

func TestCreateUserUseCase_Execute(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{CreateFunc: func(_ context.Context, u *user.User) error {
		saved = u
		return nil
	}}
	queue := &mockQueue{}
	uc := NewCreateUserUseCase(repo, queue, logger.NewNopLogger())

	kyc := user.KYCDocuments{Documents: map[string]user.KYCDocument{
		"passport": {IDType: "passport", IDNumber: "P123", Front: "https://cdn/front.png"},
	}}
	result, err := uc.Execute(context.Background(), CreateUserCommand{
		Profile:      validProfile(),
		KYCDocuments: kyc,
		ActorEmail:   "ops@goldvault.test",
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, saved.ID(), result.ID)
	assert.Equal(t, "investor@goldvault.test", result.Email)
	assert.Equal(t, user.TypeInvestor, result.UserType)
	assert.Equal(t, "ACTIVE", result.Status)
	require.NotNil(t, result.KYCDocuments)
	assert.Equal(t, "P123", result.KYCDocuments.Documents["passport"].IDNumber)
	assert.Equal(t, "ops@goldvault.test", result.Metadata.CreatedBy.Email)

	require.Len(t, queue.Messages, 1)
	assert.Equal(t, notification.KindAccountCreated, queue.Messages[0].Kind)
	assert.Equal(t, "investor@goldvault.test", queue.Messages[0].To)
}

func TestCreateUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	existing, err := user.NewUser(validProfile(), user.KYCDocuments{}, "ops@goldvault.test")
	require.NoError(t, err)

	repo := &mockUserRepository{GetByEmailFunc: func(context.Context, string) (*user.User, error) {
		return existing, nil
	}}
	uc := NewCreateUserUseCase(repo, &mockQueue{}, logger.NewNopLogger())

	_, err = uc.Execute(context.Background(), CreateUserCommand{Profile: validProfile()})

	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	assert.Equal(t, "User with this email already exist", apperrors.GetAppError(err).Message)
}

func TestCreateUserUseCase_Execute_DuplicateOnInsert(t *testing.T) {
	repo := &mockUserRepository{CreateFunc: func(context.Context, *user.User) error {
		return user.ErrEmailAlreadyExists
	}}
	queue := &mockQueue{}
	uc := NewCreateUserUseCase(repo, queue, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateUserCommand{Profile: validProfile()})

	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	assert.Empty(t, queue.Messages)
}

func TestCreateUserUseCase_Execute_InvalidEmail(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockQueue{}, logger.NewNopLogger())
	p := validProfile()
	p.Email = "not-an-email"

	_, err := uc.Execute(context.Background(), CreateUserCommand{Profile: p})

	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestCreateUserUseCase_Execute_QueueFailureIsNotFatal(t *testing.T) {
	uc := NewCreateUserUseCase(&mockUserRepository{}, &mockQueue{Err: errors.New("redis down")}, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), CreateUserCommand{Profile: validProfile()})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
}

func TestListUsersUseCase_Execute(t *testing.T) {
	u, err := user.NewUser(validProfile(), user.KYCDocuments{}, "ops@goldvault.test")
	require.NoError(t, err)

	var gotFilter user.ListFilter
	repo := &mockUserRepository{ListFunc: func(_ context.Context, f user.ListFilter) ([]*user.User, int64, error) {
		gotFilter = f
		return []*user.User{u}, 41, nil
	}}
	uc := NewListUsersUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), ListUsersQuery{Page: 3, PageSize: 500})

	require.NoError(t, err)
	assert.Equal(t, user.ListFilter{Page: 3, PageSize: 100}, gotFilter)
	assert.Equal(t, int64(41), result.Total)
	assert.Len(t, result.Users, 1)
	assert.Nil(t, result.Users[0].KYCDocuments)
}

func TestListUsersUseCase_Execute_Empty(t *testing.T) {
	uc := NewListUsersUseCase(&mockUserRepository{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ListUsersQuery{})

	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.Equal(t, "No users found", apperrors.GetAppError(err).Message)
}

func TestGetUserUseCase_Execute(t *testing.T) {
	u, err := user.NewUser(validProfile(), user.KYCDocuments{}, "ops@goldvault.test")
	require.NoError(t, err)
	repo := &mockUserRepository{GetByIDFunc: func(_ context.Context, id string) (*user.User, error) {
		if id == u.ID() {
			return u, nil
		}
		return nil, nil
	}}
	uc := NewGetUserUseCase(repo, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), u.ID())
	require.NoError(t, err)
	assert.Equal(t, u.ID(), result.ID)

	_, err = uc.Execute(context.Background(), "usr_missing")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	repo.GetByIDFunc = func(context.Context, string) (*user.User, error) { return nil, errors.New("db down") }
	_, err = uc.Execute(context.Background(), u.ID())
	require.Error(t, err)
	assert.False(t, apperrors.IsAppError(err))
}
