package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/mappers"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/db"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type InventoryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.InventoryMapper
	logger logger.Interface
}

func NewInventoryRepository(db *gorm.DB, logger logger.Interface) inventory.Repository {
	return &InventoryRepositoryImpl{
		db:     db,
		mapper: mappers.NewInventoryMapper(),
		logger: logger,
	}
}

func (r *InventoryRepositoryImpl) Create(ctx context.Context, agg *inventory.Aggregate) error {
	model := r.mapper.ToModel(agg)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create inventory", "error", err, "subscription_id", agg.SubscriptionID())
		return fmt.Errorf("failed to create inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepositoryImpl) GetBySubscription(ctx context.Context, userID, subscriptionID string) (*inventory.Aggregate, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND subscription_id = ?", userID, subscriptionID), subscriptionID)
}

func (r *InventoryRepositoryImpl) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*inventory.Aggregate, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ?", subscriptionID), subscriptionID)
}

func (r *InventoryRepositoryImpl) first(query *gorm.DB, subscriptionID string) (*inventory.Aggregate, error) {
	var model models.InventoryModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get inventory", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *InventoryRepositoryImpl) Increment(ctx context.Context, subscriptionID string, delta inventory.Totals) error {
	updates := map[string]interface{}{
		"invested_amount": gorm.Expr("invested_amount + ?", delta.InvestedAmount),
		"gold_grams_24k":  gorm.Expr("gold_grams_24k + ?", delta.GoldGrams24K),
		"updated_at":      biztime.NowUTC(),
	}
	if delta.BonusPercentageEarned > 0 {
		updates["bonus_percentage_earned"] = gorm.Expr("bonus_percentage_earned + ?", delta.BonusPercentageEarned)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.InventoryModel{}).
		Where("subscription_id = ?", subscriptionID).
		Updates(updates)
	if result.Error != nil {
		r.logger.Errorw("failed to increment inventory", "error", result.Error, "subscription_id", subscriptionID)
		return fmt.Errorf("failed to increment inventory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrInventoryNotFound
	}
	return nil
}

func (r *InventoryRepositoryImpl) ReplaceTotals(ctx context.Context, agg *inventory.Aggregate) error {
	totals := agg.Totals()
	result := db.GetTxFromContext(ctx, r.db).Model(&models.InventoryModel{}).
		Where("subscription_id = ?", agg.SubscriptionID()).
		Updates(map[string]interface{}{
			"invested_amount":         totals.InvestedAmount,
			"gold_grams_24k":          totals.GoldGrams24K,
			"bonus_percentage_earned": totals.BonusPercentageEarned,
			"updated_at":              agg.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to replace inventory totals", "error", result.Error, "subscription_id", agg.SubscriptionID())
		return fmt.Errorf("failed to replace inventory totals: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return inventory.ErrInventoryNotFound
	}
	return nil
}
