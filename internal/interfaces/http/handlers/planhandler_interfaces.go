package handlers

import (
	"context"

	plandto "github.com/bdorababu707/goldvault-investment-module/internal/application/plan/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/application/plan/usecases"
)

// Use case interfaces for PlanHandler

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*plandto.PlanDTO, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*plandto.PlanDTO, error)
}

type getPlanUseCase interface {
	Execute(ctx context.Context, planID string) (*plandto.PlanDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context) ([]*plandto.PlanDTO, error)
}
