package mappers

import (
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
)

// PlanMapper converts between plan entities and persistence models.
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) *models.PlanModel
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

type planMapper struct{}

func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPlan(
		model.ID,
		model.PlanName,
		model.Description,
		model.BonusPercentage,
		model.RelaxationDays,
		model.MinimumInvestmentAmount,
		plan.Status(model.Status),
		auditToEntity(model.Metadata),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan %s: %w", model.ID, err)
	}
	return entity, nil
}

func (m *planMapper) ToModel(entity *plan.Plan) *models.PlanModel {
	if entity == nil {
		return nil
	}

	return &models.PlanModel{
		ID:                      entity.ID(),
		PlanName:                entity.Name(),
		Description:             entity.Description(),
		BonusPercentage:         entity.BonusPercentage(),
		RelaxationDays:          entity.RelaxationDays(),
		MinimumInvestmentAmount: entity.MinimumInvestmentAmount(),
		Status:                  entity.Status().String(),
		Metadata:                auditToModel(entity.Metadata()),
		CreatedAt:               entity.CreatedAt(),
		UpdatedAt:               entity.UpdatedAt(),
	}
}

func (m *planMapper) ToEntities(list []*models.PlanModel) ([]*plan.Plan, error) {
	entities := make([]*plan.Plan, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
