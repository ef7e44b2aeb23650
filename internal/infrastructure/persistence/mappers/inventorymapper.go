package mappers

import (
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
)

// InventoryMapper converts between inventory aggregates and persistence models.
type InventoryMapper interface {
	ToEntity(model *models.InventoryModel) (*inventory.Aggregate, error)
	ToModel(entity *inventory.Aggregate) *models.InventoryModel
}

type inventoryMapper struct{}

func NewInventoryMapper() InventoryMapper {
	return &inventoryMapper{}
}

func (m *inventoryMapper) ToEntity(model *models.InventoryModel) (*inventory.Aggregate, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := inventory.ReconstructAggregate(
		model.ID,
		model.UserID,
		model.SubscriptionID,
		inventory.Totals{
			InvestedAmount:        model.InvestedAmount,
			GoldGrams24K:          model.GoldGrams24K,
			BonusPercentageEarned: model.BonusPercentageEarned,
		},
		model.Currency,
		inventory.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct inventory %s: %w", model.ID, err)
	}
	return entity, nil
}

func (m *inventoryMapper) ToModel(entity *inventory.Aggregate) *models.InventoryModel {
	if entity == nil {
		return nil
	}

	totals := entity.Totals()
	return &models.InventoryModel{
		ID:                    entity.ID(),
		UserID:                entity.UserID(),
		SubscriptionID:        entity.SubscriptionID(),
		GoldGrams24K:          totals.GoldGrams24K,
		InvestedAmount:        totals.InvestedAmount,
		BonusPercentageEarned: totals.BonusPercentageEarned,
		Currency:              entity.Currency(),
		Status:                string(entity.Status()),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}
}
