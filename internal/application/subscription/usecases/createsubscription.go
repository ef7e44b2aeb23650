package usecases

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/subscription/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/errors"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	UserID        string
	PlanID        string
	PlanStartDate string
	ActorEmail    string
}

// CreateSubscriptionUseCase subscribes a user to an active plan and
// provisions the subscription's empty inventory.
type CreateSubscriptionUseCase struct {
	userRepo         user.Repository
	planRepo         plan.Repository
	subscriptionRepo subscription.Repository
	inventoryRepo    inventory.Repository
	queue            notification.Queue
	currency         string
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	userRepo user.Repository,
	planRepo plan.Repository,
	subscriptionRepo subscription.Repository,
	inventoryRepo inventory.Repository,
	queue notification.Queue,
	currency string,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		userRepo:         userRepo,
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		inventoryRepo:    inventoryRepo,
		queue:            queue,
		currency:         currency,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	startDate, err := biztime.ParseDate(cmd.PlanStartDate)
	if err != nil {
		return nil, errors.NewValidationError("Invalid plan_start_date, expected DD-MM-YYYY", err.Error())
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	p, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_id", cmd.PlanID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil || !p.IsActive() {
		return nil, errors.NewNotFoundError("Plan not found or inactive")
	}

	sub, err := subscription.NewSubscription(u.ID(), p, startDate, cmd.ActorEmail)
	if err != nil {
		uc.logger.Errorw("failed to build subscription", "error", err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist subscription", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to persist subscription: %w", err)
	}

	// The subscription stands even if its inventory cannot be provisioned;
	// reconciliation creates missing aggregates later.
	uc.provisionInventory(ctx, sub)

	msg := notification.NewSubscriptionActive(u.Email(), u.FullName(), p.Name(), p.MinimumInvestmentAmount())
	if err := uc.queue.Enqueue(ctx, msg); err != nil {
		uc.logger.Warnw("failed to enqueue subscription email", "subscription_id", sub.ID(), "error", err)
	}

	uc.logger.Infow("subscription created successfully",
		"subscription_id", sub.ID(),
		"user_id", u.ID(),
		"plan_id", p.ID(),
	)
	return dto.ToSubscriptionDTO(sub), nil
}

func (uc *CreateSubscriptionUseCase) provisionInventory(ctx context.Context, sub *subscription.Subscription) {
	agg, err := inventory.NewAggregate(sub.UserID(), sub.ID(), uc.currency)
	if err == nil {
		err = uc.inventoryRepo.Create(ctx, agg)
	}
	if err != nil {
		uc.logger.Errorw("failed to provision inventory for subscription",
			"subscription_id", sub.ID(),
			"error", err,
		)
	}
}
