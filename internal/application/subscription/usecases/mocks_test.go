package usecases

import (
	"context"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
)

type mockUserRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*user.User, error)
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(context.Context, string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(context.Context, user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockPlanRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*plan.Plan, error)
}

func (m *mockPlanRepository) Create(context.Context, *plan.Plan) error { return nil }

func (m *mockPlanRepository) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPlanRepository) ListActive(context.Context) ([]*plan.Plan, error) { return nil, nil }

func (m *mockPlanRepository) Update(context.Context, *plan.Plan) error { return nil }

type mockSubscriptionRepository struct {
	CreateFunc       func(ctx context.Context, sub *subscription.Subscription) error
	ListByUserIDFunc func(ctx context.Context, userID string) ([]*subscription.Subscription, error)
}

func (m *mockSubscriptionRepository) Create(ctx context.Context, sub *subscription.Subscription) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) GetByID(context.Context, string) (*subscription.Subscription, error) {
	return nil, nil
}

func (m *mockSubscriptionRepository) ListByUserID(ctx context.Context, userID string) ([]*subscription.Subscription, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) ListIDs(context.Context) ([]string, error) { return nil, nil }

type mockInventoryRepository struct {
	CreateFunc func(ctx context.Context, agg *inventory.Aggregate) error
}

func (m *mockInventoryRepository) Create(ctx context.Context, agg *inventory.Aggregate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, agg)
	}
	return nil
}

func (m *mockInventoryRepository) GetBySubscription(context.Context, string, string) (*inventory.Aggregate, error) {
	return nil, nil
}

func (m *mockInventoryRepository) GetBySubscriptionID(context.Context, string) (*inventory.Aggregate, error) {
	return nil, nil
}

func (m *mockInventoryRepository) Increment(context.Context, string, inventory.Totals) error {
	return nil
}

func (m *mockInventoryRepository) ReplaceTotals(context.Context, *inventory.Aggregate) error {
	return nil
}

type mockEntryRepository struct {
	ListBySubscriptionFunc func(ctx context.Context, userID, subscriptionID string) ([]*investment.Entry, error)
}

func (m *mockEntryRepository) Create(context.Context, *investment.Entry) error { return nil }

func (m *mockEntryRepository) CountBySubscription(context.Context, string) (int, error) {
	return 0, nil
}

func (m *mockEntryRepository) HasBonusCreditInMonth(context.Context, string, string, string) (bool, error) {
	return false, nil
}

func (m *mockEntryRepository) ListBySubscription(ctx context.Context, userID, subscriptionID string) ([]*investment.Entry, error) {
	if m.ListBySubscriptionFunc != nil {
		return m.ListBySubscriptionFunc(ctx, userID, subscriptionID)
	}
	return nil, nil
}

func (m *mockEntryRepository) ListAllBySubscription(context.Context, string) ([]*investment.Entry, error) {
	return nil, nil
}

type mockQueue struct {
	Messages []notification.Message
	Err      error
}

func (m *mockQueue) Enqueue(_ context.Context, msg notification.Message) error {
	if m.Err != nil {
		return m.Err
	}
	m.Messages = append(m.Messages, msg)
	return nil
}
