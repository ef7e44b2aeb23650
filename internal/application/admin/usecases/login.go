package usecases

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/admin/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/auth"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

const msgInvalidCredentials = "Invalid email or password"

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	adminRepo admin.Repository
	hasher    admin.PasswordHasher
	tokens    TokenService
	logger    logger.Interface
}

func NewLoginUseCase(adminRepo admin.Repository, hasher admin.PasswordHasher, tokens TokenService, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: adminRepo,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Execute issues an access token. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginDTO, error) {
	a, err := uc.adminRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get admin by email", "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if a == nil {
		uc.logger.Infow("login for unknown admin", "email", utils.MaskEmail(cmd.Email))
		return nil, errors.NewUnauthorizedError(msgInvalidCredentials)
	}

	if err := a.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Infow("invalid admin credentials", "admin_id", a.ID())
		return nil, errors.NewUnauthorizedError(msgInvalidCredentials)
	}

	token, err := uc.tokens.Generate(a.ID(), a.Email())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "admin_id", a.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	uc.logger.Infow("admin logged in", "admin_id", a.ID())
	return &dto.LoginDTO{AccessToken: token, TokenType: auth.TokenTypeBearer}, nil
}
