package usecases

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/subscription/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type ListUserSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListUserSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ListUserSubscriptionsUseCase {
	return &ListUserSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

// Execute returns every subscription of the user, possibly none.
func (uc *ListUserSubscriptionsUseCase) Execute(ctx context.Context, userID string) ([]*dto.SubscriptionDTO, error) {
	subs, err := uc.subscriptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return dto.ToSubscriptionDTOs(subs), nil
}
