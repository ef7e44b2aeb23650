package usecases

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/plan/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// ListPlansUseCase returns the plans new subscriptions can be created on.
type ListPlansUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return dto.ToPlanDTOs(plans), nil
}
