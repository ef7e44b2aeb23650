package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/mappers"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/db"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create investment plan", "error", err, "plan_id", p.ID())
		return fmt.Errorf("failed to create investment plan: %w", err)
	}

	r.logger.Infow("investment plan created", "plan_id", p.ID(), "plan_name", p.Name())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get investment plan", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get investment plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	var list []*models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", plan.StatusActive.String()).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list active investment plans", "error", err)
		return nil, fmt.Errorf("failed to list active investment plans: %w", err)
	}

	return r.mapper.ToEntities(list)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	model := r.mapper.ToModel(p)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"plan_name":        model.PlanName,
			"description":      model.Description,
			"bonus_percentage": model.BonusPercentage,
			"relaxation_days":  model.RelaxationDays,
			"status":           model.Status,
			"metadata":         model.Metadata,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update investment plan", "error", result.Error, "plan_id", p.ID())
		return fmt.Errorf("failed to update investment plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrPlanNotFound
	}

	r.logger.Infow("investment plan updated", "plan_id", p.ID())
	return nil
}
