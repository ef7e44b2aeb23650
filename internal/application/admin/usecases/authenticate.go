package usecases

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// AuthenticateUseCase resolves a bearer token to a live admin record.
// Deleting the admin revokes every token issued to it.
type AuthenticateUseCase struct {
	adminRepo admin.Repository
	tokens    TokenService
	logger    logger.Interface
}

func NewAuthenticateUseCase(adminRepo admin.Repository, tokens TokenService, logger logger.Interface) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    logger,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, token string) (*admin.Admin, error) {
	claims, err := uc.tokens.Verify(token)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Could not validate credentials", err.Error())
	}

	a, err := uc.adminRepo.GetByID(ctx, claims.UUID)
	if err != nil {
		uc.logger.Errorw("failed to load admin for token", "admin_id", claims.UUID, "error", err)
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if a == nil {
		return nil, errors.NewUnauthorizedError("Admin not found")
	}
	return a, nil
}
