package usecases

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/auth"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/config"
	apperrors "github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr.Code
}

func profile(email, phone string) admin.Profile {
	return admin.Profile{
		Firstname:   "Omar",
		Surname:     "Haddad",
		Email:       email,
		Country:     "UAE",
		CountryCode: "+971",
		PhoneNumber: phone,
	}
}

func newStoredAdmin(t *testing.T, role admin.Role, email, phone, password string) *admin.Admin {
	t.Helper()
	hash, err := plainHasher{}.Hash(password)
	require.NoError(t, err)
	a, err := admin.NewAdmin(profile(email, phone), hash, role, nil, "")
	require.NoError(t, err)
	return a
}

func TestCreateSuperAdminUseCase_Execute(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewCreateSuperAdminUseCase(repo, plainHasher{}, "bootstrap", logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), CreateSuperAdminCommand{
		Profile:   profile("Root@GoldVault.test", "500"),
		Password:  "s3cret",
		SecretKey: "bootstrap",
	})

	require.NoError(t, err)
	assert.Equal(t, "root@goldvault.test", result.Email)
	assert.Equal(t, "SUPER_ADMIN", result.UserType)
	assert.Empty(t, result.CreatedBy)
	assert.Equal(t, "h:s3cret", repo.admins[result.ID].PasswordHash())
}

func TestCreateSuperAdminUseCase_Execute_WrongSecret(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewCreateSuperAdminUseCase(repo, plainHasher{}, "bootstrap", logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateSuperAdminCommand{
		Profile:   profile("root@goldvault.test", "500"),
		Password:  "s3cret",
		SecretKey: "guess",
	})

	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	assert.Equal(t, "Invalid secret key", apperrors.GetAppError(err).Message)
	assert.Empty(t, repo.admins)
}

func TestCreateSuperAdminUseCase_Execute_EmptyConfiguredSecretRejectsAll(t *testing.T) {
	uc := NewCreateSuperAdminUseCase(newMockAdminRepository(), plainHasher{}, "", logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateSuperAdminCommand{Profile: profile("root@goldvault.test", "500"), Password: "x"})

	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}

func TestCreateSuperAdminUseCase_Execute_Duplicates(t *testing.T) {
	existing := newStoredAdmin(t, admin.RoleSuperAdmin, "root@goldvault.test", "500", "pw")
	uc := NewCreateSuperAdminUseCase(newMockAdminRepository(existing), plainHasher{}, "bootstrap", logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateSuperAdminCommand{
		Profile: profile("ROOT@goldvault.test", "999"), Password: "pw", SecretKey: "bootstrap",
	})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	assert.Equal(t, "Email already exists", apperrors.GetAppError(err).Message)

	_, err = uc.Execute(context.Background(), CreateSuperAdminCommand{
		Profile: profile("new@goldvault.test", "500"), Password: "pw", SecretKey: "bootstrap",
	})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	assert.Equal(t, "Phone number already exists", apperrors.GetAppError(err).Message)
}

func TestCreateAdminUseCase_RoleHierarchy(t *testing.T) {
	super := newStoredAdmin(t, admin.RoleSuperAdmin, "root@goldvault.test", "500", "pw")
	dept := newStoredAdmin(t, admin.RoleDeptAdmin, "dept@goldvault.test", "501", "pw")
	plain := newStoredAdmin(t, admin.RoleAdmin, "admin@goldvault.test", "502", "pw")

	tests := []struct {
		name    string
		actor   *admin.Admin
		role    admin.Role
		status  int
		message string
	}{
		{"super creates dept admin", super, admin.RoleDeptAdmin, 0, ""},
		{"dept admin creates admin", dept, admin.RoleAdmin, 0, ""},
		{"dept admin cannot create dept admin", dept, admin.RoleDeptAdmin, http.StatusForbidden,
			"Access Denied. You dont have permission to create Department Admins"},
		{"super cannot create admin", super, admin.RoleAdmin, http.StatusForbidden,
			"Access Denied. You dont have permission to create Admins"},
		{"admin cannot create admin", plain, admin.RoleAdmin, http.StatusForbidden,
			"Access Denied. You dont have permission to create Admins"},
		{"nobody creates super admins here", super, admin.RoleSuperAdmin, http.StatusBadRequest, "Invalid admin role"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockAdminRepository(super, dept, plain)
			uc := NewCreateAdminUseCase(repo, plainHasher{}, logger.NewNopLogger())

			result, err := uc.Execute(context.Background(), CreateAdminCommand{
				Actor:     tt.actor,
				Role:      tt.role,
				Profile:   profile("new@goldvault.test", fmt.Sprintf("60%d", i)),
				Password:  "pw",
				UserRoles: []string{"PLANS", "USERS"},
			})

			if tt.status != 0 {
				assert.Equal(t, tt.status, statusOf(t, err))
				assert.Equal(t, tt.message, apperrors.GetAppError(err).Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.actor.ID(), result.CreatedBy)
			assert.Equal(t, tt.role.String(), result.UserType)
		})
	}
}

func TestCreateAdminUseCase_UserRolesOnlyForAdmins(t *testing.T) {
	super := newStoredAdmin(t, admin.RoleSuperAdmin, "root@goldvault.test", "500", "pw")
	dept := newStoredAdmin(t, admin.RoleDeptAdmin, "dept@goldvault.test", "501", "pw")
	uc := NewCreateAdminUseCase(newMockAdminRepository(super, dept), plainHasher{}, logger.NewNopLogger())

	deptResult, err := uc.Execute(context.Background(), CreateAdminCommand{
		Actor: super, Role: admin.RoleDeptAdmin, Profile: profile("d2@goldvault.test", "510"), Password: "pw",
		UserRoles: []string{"PLANS"},
	})
	require.NoError(t, err)
	assert.Empty(t, deptResult.UserRoles)

	adminResult, err := uc.Execute(context.Background(), CreateAdminCommand{
		Actor: dept, Role: admin.RoleAdmin, Profile: profile("a2@goldvault.test", "511"), Password: "pw",
		UserRoles: []string{"PLANS"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"PLANS"}, adminResult.UserRoles)
}

func TestCreateAdminUseCase_DuplicateOnInsert(t *testing.T) {
	super := newStoredAdmin(t, admin.RoleSuperAdmin, "root@goldvault.test", "500", "pw")
	repo := newMockAdminRepository(super)
	repo.CreateErr = admin.ErrPhoneExists
	uc := NewCreateAdminUseCase(repo, plainHasher{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), CreateAdminCommand{
		Actor: super, Role: admin.RoleDeptAdmin, Profile: profile("d@goldvault.test", "520"), Password: "pw",
	})

	assert.Equal(t, http.StatusConflict, statusOf(t, err))
	assert.Equal(t, "Phone number already exists", apperrors.GetAppError(err).Message)
}

func TestLoginUseCase_Execute(t *testing.T) {
	a := newStoredAdmin(t, admin.RoleAdmin, "ops@goldvault.test", "500", "correct")
	uc := NewLoginUseCase(newMockAdminRepository(a), plainHasher{}, fakeTokens{}, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{Email: "OPS@goldvault.test", Password: "correct"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, a.ID()+"|ops@goldvault.test", result.AccessToken)

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "ops@goldvault.test", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	wrongPassword := apperrors.GetAppError(err).Message

	_, err = uc.Execute(context.Background(), LoginCommand{Email: "ghost@goldvault.test", Password: "correct"})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	assert.Equal(t, wrongPassword, apperrors.GetAppError(err).Message)
}

func TestLoginUseCase_Execute_WithRealServices(t *testing.T) {
	hasher := auth.NewArgon2PasswordHasher(config.PasswordConfig{Memory: 1024, Iterations: 1, Parallelism: 1})
	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	a, err := admin.NewAdmin(profile("ops@goldvault.test", "500"), hash, admin.RoleAdmin, nil, "")
	require.NoError(t, err)

	jwtSvc := auth.NewJWTService("test-secret", 5)
	repo := newMockAdminRepository(a)
	login := NewLoginUseCase(repo, hasher, jwtSvc, logger.NewNopLogger())
	authenticate := NewAuthenticateUseCase(repo, jwtSvc, logger.NewNopLogger())

	result, err := login.Execute(context.Background(), LoginCommand{Email: "ops@goldvault.test", Password: "correct horse"})
	require.NoError(t, err)

	got, err := authenticate.Execute(context.Background(), result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, a.ID(), got.ID())
}

func TestLoginUseCase_Execute_TokenFailure(t *testing.T) {
	a := newStoredAdmin(t, admin.RoleAdmin, "ops@goldvault.test", "500", "correct")
	uc := NewLoginUseCase(newMockAdminRepository(a), plainHasher{}, fakeTokens{GenerateErr: errors.New("boom")}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "ops@goldvault.test", Password: "correct"})
	require.Error(t, err)
	assert.False(t, apperrors.IsAppError(err))
}

func TestAuthenticateUseCase_Execute(t *testing.T) {
	a := newStoredAdmin(t, admin.RoleAdmin, "ops@goldvault.test", "500", "pw")
	repo := newMockAdminRepository(a)
	uc := NewAuthenticateUseCase(repo, fakeTokens{}, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), a.ID()+"|ops@goldvault.test")
	require.NoError(t, err)
	assert.Equal(t, a.ID(), got.ID())

	_, err = uc.Execute(context.Background(), "garbage")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	delete(repo.admins, a.ID())
	_, err = uc.Execute(context.Background(), a.ID()+"|ops@goldvault.test")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestGetCurrentAdminUseCase_Execute(t *testing.T) {
	a := newStoredAdmin(t, admin.RoleDeptAdmin, "dept@goldvault.test", "500", "pw")
	uc := NewGetCurrentAdminUseCase(newMockAdminRepository(a), logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), a.ID())
	require.NoError(t, err)
	assert.Equal(t, "dept@goldvault.test", result.Email)
	assert.Equal(t, "DEPT_ADMIN", result.UserType)

	_, err = uc.Execute(context.Background(), "adm_missing")
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}
