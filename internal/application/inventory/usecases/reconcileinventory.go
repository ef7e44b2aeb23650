package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/inventory/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/cache"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// ReconcileInventoryUseCase recomputes a subscription's inventory aggregate
// from its investment ledger and overwrites the stored totals.
type ReconcileInventoryUseCase struct {
	subscriptionRepo subscription.Repository
	entryRepo        investment.Repository
	inventoryRepo    inventory.Repository
	txMgr            Transactor
	locker           SubscriptionLocker
	currency         string
	logger           logger.Interface
}

func NewReconcileInventoryUseCase(
	subscriptionRepo subscription.Repository,
	entryRepo investment.Repository,
	inventoryRepo inventory.Repository,
	txMgr Transactor,
	locker SubscriptionLocker,
	currency string,
	logger logger.Interface,
) *ReconcileInventoryUseCase {
	return &ReconcileInventoryUseCase{
		subscriptionRepo: subscriptionRepo,
		entryRepo:        entryRepo,
		inventoryRepo:    inventoryRepo,
		txMgr:            txMgr,
		locker:           locker,
		currency:         currency,
		logger:           logger,
	}
}

func (uc *ReconcileInventoryUseCase) Execute(ctx context.Context, subscriptionID string) (*dto.ReconcileResultDTO, error) {
	sub, err := uc.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Subscription not found with id: %s", subscriptionID))
	}

	// Entry creation holds the same lock, so no entry lands between replay
	// and overwrite.
	unlock, err := uc.locker.Lock(ctx, subscriptionID)
	if err != nil {
		if stderrors.Is(err, cache.ErrLockNotAcquired) {
			return nil, errors.NewConflictError("Subscription is busy, please retry")
		}
		uc.logger.Warnw("failed to lock subscription for reconcile", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to lock subscription: %w", err)
	}
	defer unlock()

	result := &dto.ReconcileResultDTO{SubscriptionID: subscriptionID}
	var agg *inventory.Aggregate

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		entries, err := uc.entryRepo.ListAllBySubscription(txCtx, subscriptionID)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		totals := investment.Replay(entries)
		result.EntryCount = len(entries)
		result.After = dto.ToTotalsDTO(totals)

		agg, err = uc.inventoryRepo.GetBySubscriptionID(txCtx, subscriptionID)
		if err != nil {
			return fmt.Errorf("failed to get inventory: %w", err)
		}

		if agg == nil {
			agg, err = inventory.NewAggregate(sub.UserID(), subscriptionID, uc.currency)
			if err != nil {
				return err
			}
			agg.ReplaceTotals(totals)
			result.Provisioned = true
			return uc.inventoryRepo.Create(txCtx, agg)
		}

		before := dto.ToTotalsDTO(agg.Totals())
		result.Before = &before
		if !agg.ReplaceTotals(totals) {
			return nil
		}
		result.Drifted = true
		return uc.inventoryRepo.ReplaceTotals(txCtx, agg)
	})
	if err != nil {
		uc.logger.Errorw("failed to reconcile inventory", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to reconcile inventory: %w", err)
	}

	result.Inventory = dto.ToInventoryDTO(agg)
	if result.Drifted || result.Provisioned {
		uc.logger.Warnw("inventory repaired from ledger",
			"subscription_id", subscriptionID,
			"provisioned", result.Provisioned,
			"before", result.Before,
			"after", result.After,
		)
	}
	return result, nil
}

// ReconcileAllInventoriesUseCase replays the ledger of every subscription.
// It satisfies the scheduler's batch job contract.
type ReconcileAllInventoriesUseCase struct {
	subscriptionRepo subscription.Repository
	reconcile        *ReconcileInventoryUseCase
	logger           logger.Interface
}

func NewReconcileAllInventoriesUseCase(
	subscriptionRepo subscription.Repository,
	reconcile *ReconcileInventoryUseCase,
	logger logger.Interface,
) *ReconcileAllInventoriesUseCase {
	return &ReconcileAllInventoriesUseCase{
		subscriptionRepo: subscriptionRepo,
		reconcile:        reconcile,
		logger:           logger,
	}
}

// Execute returns how many aggregates were repaired or provisioned. A failing
// subscription is logged and skipped.
func (uc *ReconcileAllInventoriesUseCase) Execute(ctx context.Context) (int, error) {
	ids, err := uc.subscriptionRepo.ListIDs(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions for reconcile", "error", err)
		return 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	repaired, failed := 0, 0
	for _, subID := range ids {
		if err := ctx.Err(); err != nil {
			return repaired, err
		}
		result, err := uc.reconcile.Execute(ctx, subID)
		if err != nil {
			failed++
			continue
		}
		if result.Drifted || result.Provisioned {
			repaired++
		}
	}

	uc.logger.Infow("inventory reconcile finished",
		"subscriptions", len(ids),
		"repaired", repaired,
		"failed", failed,
	)
	return repaired, nil
}
