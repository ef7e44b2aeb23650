package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/plan/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	apperrors "github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type CreatePlanCommand struct {
	PlanName                string
	Description             string
	BonusPercentage         float64
	RelaxationDays          int
	MinimumInvestmentAmount int
	ActorEmail              string
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	p, err := plan.NewPlan(
		cmd.PlanName,
		cmd.Description,
		cmd.BonusPercentage,
		cmd.RelaxationDays,
		cmd.MinimumInvestmentAmount,
		cmd.ActorEmail,
	)
	if err != nil {
		uc.logger.Warnw("invalid plan", "error", err)
		return nil, toValidationError(err)
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to persist plan", "error", err)
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	uc.logger.Infow("plan created successfully", "plan_id", p.ID(), "plan_name", p.Name())
	return dto.ToPlanDTO(p), nil
}

func toValidationError(err error) error {
	switch {
	case errors.Is(err, plan.ErrInvalidBonus),
		errors.Is(err, plan.ErrInvalidRelaxation),
		errors.Is(err, plan.ErrInvalidMinimum),
		errors.Is(err, plan.ErrInvalidStatus):
		return apperrors.NewValidationError(err.Error())
	}
	return apperrors.NewValidationError("invalid plan", err.Error())
}
