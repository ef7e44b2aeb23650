package usecases

import (
	"context"
	"crypto/subtle"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/admin/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type CreateSuperAdminCommand struct {
	Profile   admin.Profile
	Password  string
	SecretKey string
}

// CreateSuperAdminUseCase bootstraps super admins guarded by a shared secret.
type CreateSuperAdminUseCase struct {
	registrar
	secretKey string
}

func NewCreateSuperAdminUseCase(
	adminRepo admin.Repository,
	hasher admin.PasswordHasher,
	secretKey string,
	logger logger.Interface,
) *CreateSuperAdminUseCase {
	return &CreateSuperAdminUseCase{
		registrar: registrar{adminRepo: adminRepo, hasher: hasher, logger: logger},
		secretKey: secretKey,
	}
}

func (uc *CreateSuperAdminUseCase) Execute(ctx context.Context, cmd CreateSuperAdminCommand) (*dto.AdminDTO, error) {
	if uc.secretKey == "" || subtle.ConstantTimeCompare([]byte(cmd.SecretKey), []byte(uc.secretKey)) != 1 {
		uc.logger.Warnw("invalid secret key for super admin creation")
		return nil, errors.NewForbiddenError("Invalid secret key")
	}

	a, err := uc.register(ctx, cmd.Profile, cmd.Password, admin.RoleSuperAdmin, nil, "")
	if err != nil {
		return nil, err
	}
	return dto.ToAdminDTO(a), nil
}
