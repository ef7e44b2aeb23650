package usecases

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/admin/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type GetCurrentAdminUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewGetCurrentAdminUseCase(adminRepo admin.Repository, logger logger.Interface) *GetCurrentAdminUseCase {
	return &GetCurrentAdminUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// Execute re-reads the admin so the profile reflects the latest record.
func (uc *GetCurrentAdminUseCase) Execute(ctx context.Context, adminID string) (*dto.AdminDTO, error) {
	a, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		uc.logger.Errorw("failed to fetch current admin", "admin_id", adminID, "error", err)
		return nil, fmt.Errorf("failed to fetch current admin: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("Admin not found")
	}
	return dto.ToAdminDTO(a), nil
}
