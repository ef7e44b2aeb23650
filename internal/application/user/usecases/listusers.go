package usecases

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/user/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute returns one page of users, newest first. An empty page is reported
// as not found.
func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*dto.ListUsersResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	users, total, err := uc.userRepo.List(ctx, user.ListFilter{Page: p.Page, PageSize: p.PageSize})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return nil, errors.NewNotFoundError("No users found")
	}

	return &dto.ListUsersResult{
		Users:    dto.ToUserDTOs(users),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
