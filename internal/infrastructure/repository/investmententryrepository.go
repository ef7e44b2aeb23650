package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/mappers"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/persistence/models"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/db"
	sharedErrors "github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type InvestmentEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.InvestmentEntryMapper
	logger logger.Interface
}

func NewInvestmentEntryRepository(db *gorm.DB, logger logger.Interface) investment.Repository {
	return &InvestmentEntryRepositoryImpl{
		db:     db,
		mapper: mappers.NewInvestmentEntryMapper(),
		logger: logger,
	}
}

func (r *InvestmentEntryRepositoryImpl) Create(ctx context.Context, entry *investment.Entry) error {
	model := r.mapper.ToModel(entry)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if entry.IsBonusCredited() && isBonusCreditConflict(err) {
			return fmt.Errorf("%w: %s", investment.ErrBonusAlreadyCredited, *entry.BonusCreditKey())
		}
		r.logger.Errorw("failed to create investment entry", "error", err,
			"entry_id", entry.ID(), "subscription_id", entry.SubscriptionID())
		return fmt.Errorf("failed to create investment entry: %w", err)
	}
	return nil
}

// isBonusCreditConflict matches unique violations on the bonus credit key
// for both MySQL and SQLite.
func isBonusCreditConflict(err error) bool {
	if !sharedErrors.IsDuplicateError(err) {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "uk_entries_bonus_credit") || strings.Contains(msg, "bonus_credit_key")
}

func (r *InvestmentEntryRepositoryImpl) CountBySubscription(ctx context.Context, subscriptionID string) (int, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.InvestmentEntryModel{}).
		Where("subscription_id = ?", subscriptionID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count investment entries", "error", err, "subscription_id", subscriptionID)
		return 0, fmt.Errorf("failed to count investment entries: %w", err)
	}
	return int(count), nil
}

func (r *InvestmentEntryRepositoryImpl) HasBonusCreditInMonth(ctx context.Context, subscriptionID, userID, month string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.InvestmentEntryModel{}).
		Where("subscription_id = ? AND user_id = ? AND is_bonus_credited = ? AND deposit_month = ?",
			subscriptionID, userID, true, month).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check bonus credit", "error", err,
			"subscription_id", subscriptionID, "month", month)
		return false, fmt.Errorf("failed to check bonus credit: %w", err)
	}
	return count > 0, nil
}

func (r *InvestmentEntryRepositoryImpl) ListBySubscription(ctx context.Context, userID, subscriptionID string) ([]*investment.Entry, error) {
	return r.list(db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND subscription_id = ?", userID, subscriptionID), subscriptionID)
}

func (r *InvestmentEntryRepositoryImpl) ListAllBySubscription(ctx context.Context, subscriptionID string) ([]*investment.Entry, error) {
	return r.list(db.GetTxFromContext(ctx, r.db).
		Where("subscription_id = ?", subscriptionID), subscriptionID)
}

func (r *InvestmentEntryRepositoryImpl) list(query *gorm.DB, subscriptionID string) ([]*investment.Entry, error) {
	var list []*models.InvestmentEntryModel
	if err := query.Order("deposit_date ASC").Order("created_at ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list investment entries", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to list investment entries: %w", err)
	}
	return r.mapper.ToEntities(list)
}
