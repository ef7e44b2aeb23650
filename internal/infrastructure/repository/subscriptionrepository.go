package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/mappers"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/db"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *subscription.Subscription) error {
	model := r.mapper.ToModel(sub)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err, "subscription_id", sub.ID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	r.logger.Infow("subscription created",
		"subscription_id", sub.ID(),
		"user_id", sub.UserID(),
		"plan_id", sub.PlanID(),
	)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription", "error", err, "subscription_id", id)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) ListByUserID(ctx context.Context, userID string) ([]*subscription.Subscription, error) {
	var list []*models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list user subscriptions", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list user subscriptions: %w", err)
	}

	return r.mapper.ToEntities(list)
}

func (r *SubscriptionRepositoryImpl) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		r.logger.Errorw("failed to list subscription IDs", "error", err)
		return nil, fmt.Errorf("failed to list subscription IDs: %w", err)
	}
	return ids, nil
}
