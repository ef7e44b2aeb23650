package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/plan/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// UpdatePlanCommand carries only the fields the admin sent.
type UpdatePlanCommand struct {
	PlanID          string
	PlanName        *string
	Description     *string
	BonusPercentage *float64
	RelaxationDays  *int
	Status          *string
	ActorEmail      string
}

// UpdatePlanUseCase edits a plan. Subscriptions keep the snapshot taken
// when they were created, so edits only affect future subscriptions.
type UpdatePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	update := plan.Update{
		Name:            cmd.PlanName,
		Description:     cmd.Description,
		BonusPercentage: cmd.BonusPercentage,
		RelaxationDays:  cmd.RelaxationDays,
	}
	if cmd.Status != nil {
		status := plan.Status(*cmd.Status)
		update.Status = &status
	}
	if update.IsEmpty() {
		return nil, errors.NewBadRequestError("No valid data provided for update")
	}

	p, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_id", cmd.PlanID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("Investment plan not found")
	}

	if err := p.ApplyUpdate(update, cmd.ActorEmail); err != nil {
		if stderrors.Is(err, plan.ErrEmptyUpdate) {
			return nil, errors.NewBadRequestError("No valid data provided for update")
		}
		uc.logger.Warnw("invalid plan update", "plan_id", cmd.PlanID, "error", err)
		return nil, toValidationError(err)
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		if stderrors.Is(err, plan.ErrPlanNotFound) {
			return nil, errors.NewNotFoundError("Investment plan not found")
		}
		uc.logger.Errorw("failed to update plan", "plan_id", cmd.PlanID, "error", err)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	reloaded, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil || reloaded == nil {
		uc.logger.Warnw("failed to reload plan after update", "plan_id", cmd.PlanID, "error", err)
		reloaded = p
	}

	uc.logger.Infow("plan updated successfully", "plan_id", cmd.PlanID, "updated_by", cmd.ActorEmail)
	return dto.ToPlanDTO(reloaded), nil
}
