package handlers

import (
	"context"

	admindto "github.com/bdorababu707/goldvault-investment-module/internal/application/admin/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/application/admin/usecases"
)

// Use case interfaces for AuthHandler

type createSuperAdminUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSuperAdminCommand) (*admindto.AdminDTO, error)
}

type createAdminUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateAdminCommand) (*admindto.AdminDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*admindto.LoginDTO, error)
}

type getCurrentAdminUseCase interface {
	Execute(ctx context.Context, adminID string) (*admindto.AdminDTO, error)
}
