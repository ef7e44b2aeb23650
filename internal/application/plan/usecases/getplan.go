package usecases

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/plan/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type GetPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo plan.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

// Execute returns an active plan. Inactive plans are reported as not found.
func (uc *GetPlanUseCase) Execute(ctx context.Context, planID string) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetByID(ctx, planID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_id", planID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil || !p.IsActive() {
		return nil, errors.NewNotFoundError("Investment plan not found or not active")
	}
	return dto.ToPlanDTO(p), nil
}
