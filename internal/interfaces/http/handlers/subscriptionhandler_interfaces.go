package handlers

import (
	"context"

	investmentdto "github.com/bdorababu707/goldvault-investment-module/internal/application/investment/dto"
	subdto "github.com/bdorababu707/goldvault-investment-module/internal/application/subscription/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type createSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*subdto.SubscriptionDTO, error)
}

type listUserSubscriptionsUseCase interface {
	Execute(ctx context.Context, userID string) ([]*subdto.SubscriptionDTO, error)
}

type listTransactionsUseCase interface {
	Execute(ctx context.Context, userID, subscriptionID string) ([]*investmentdto.InvestmentEntryDTO, error)
}
