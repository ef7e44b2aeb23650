package usecases

import (
	"context"
	"fmt"

	investmentdto "github.com/bdorababu707/goldvault-investment-module/internal/application/investment/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// ListTransactionsUseCase returns the ledger of one user subscription.
type ListTransactionsUseCase struct {
	entryRepo investment.Repository
	logger    logger.Interface
}

func NewListTransactionsUseCase(entryRepo investment.Repository, logger logger.Interface) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

func (uc *ListTransactionsUseCase) Execute(ctx context.Context, userID, subscriptionID string) ([]*investmentdto.InvestmentEntryDTO, error) {
	entries, err := uc.entryRepo.ListBySubscription(ctx, userID, subscriptionID)
	if err != nil {
		uc.logger.Errorw("failed to list investment entries",
			"user_id", userID,
			"subscription_id", subscriptionID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to list investment entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, errors.NewNotFoundError(
			fmt.Sprintf("No previous investment entries found for subscription id: %s", subscriptionID),
		)
	}
	return investmentdto.ToInvestmentEntryDTOs(entries), nil
}
