package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
)

// SubscriptionMapper converts between subscription entities and persistence models.
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type subscriptionMapper struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	snap := model.PlanSnapshot.Data()
	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.UserID,
		model.PlanID,
		model.PlanStartDate.UTC(),
		model.IsEligibleForBonus,
		subscription.Status(model.Status),
		subscription.PlanSnapshot(snap),
		auditToEntity(model.Metadata),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription %s: %w", model.ID, err)
	}
	return entity, nil
}

func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}

	return &models.SubscriptionModel{
		ID:                 entity.ID(),
		UserID:             entity.UserID(),
		PlanID:             entity.PlanID(),
		PlanStartDate:      entity.PlanStartDate(),
		IsEligibleForBonus: entity.IsEligibleForBonus(),
		Status:             string(entity.Status()),
		PlanSnapshot:       datatypes.NewJSONType(models.PlanSnapshot(entity.PlanSnapshot())),
		Metadata:           auditToModel(entity.Metadata()),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *subscriptionMapper) ToEntities(list []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
