package usecases

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/inventory/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type GetInventoryUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewGetInventoryUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *GetInventoryUseCase {
	return &GetInventoryUseCase{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

func (uc *GetInventoryUseCase) Execute(ctx context.Context, userID, subscriptionID string) (*dto.InventoryDTO, error) {
	agg, err := uc.inventoryRepo.GetBySubscription(ctx, userID, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to fetch user subscription inventory",
			"user_id", userID,
			"subscription_id", subscriptionID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if agg == nil {
		return nil, errors.NewNotFoundError(
			fmt.Sprintf("Inventory not found for subscription id: %s", subscriptionID),
		)
	}
	return dto.ToInventoryDTO(agg), nil
}
