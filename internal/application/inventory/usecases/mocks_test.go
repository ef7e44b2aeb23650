package usecases

import (
	"context"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
)

type mockSubscriptionRepository struct {
	subs    map[string]*subscription.Subscription
	ListErr error
}

func (m *mockSubscriptionRepository) Create(context.Context, *subscription.Subscription) error {
	return nil
}

func (m *mockSubscriptionRepository) GetByID(_ context.Context, id string) (*subscription.Subscription, error) {
	return m.subs[id], nil
}

func (m *mockSubscriptionRepository) ListByUserID(context.Context, string) ([]*subscription.Subscription, error) {
	return nil, nil
}

func (m *mockSubscriptionRepository) ListIDs(context.Context) ([]string, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	ids := make([]string, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	return ids, nil
}

type mockEntryRepository struct {
	entries map[string][]*investment.Entry
}

func (m *mockEntryRepository) Create(context.Context, *investment.Entry) error { return nil }

func (m *mockEntryRepository) CountBySubscription(_ context.Context, subID string) (int, error) {
	return len(m.entries[subID]), nil
}

func (m *mockEntryRepository) HasBonusCreditInMonth(context.Context, string, string, string) (bool, error) {
	return false, nil
}

func (m *mockEntryRepository) ListBySubscription(_ context.Context, _, subID string) ([]*investment.Entry, error) {
	return m.entries[subID], nil
}

func (m *mockEntryRepository) ListAllBySubscription(_ context.Context, subID string) ([]*investment.Entry, error) {
	return m.entries[subID], nil
}

type mockInventoryRepository struct {
	aggs     map[string]*inventory.Aggregate
	GetErr   error
	created  int
	replaced int
}

func newMockInventoryRepository() *mockInventoryRepository {
	return &mockInventoryRepository{aggs: make(map[string]*inventory.Aggregate)}
}

func (m *mockInventoryRepository) Create(_ context.Context, agg *inventory.Aggregate) error {
	m.created++
	m.aggs[agg.SubscriptionID()] = agg
	return nil
}

func (m *mockInventoryRepository) GetBySubscription(_ context.Context, userID, subID string) (*inventory.Aggregate, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	agg := m.aggs[subID]
	if agg == nil || agg.UserID() != userID {
		return nil, nil
	}
	return agg, nil
}

func (m *mockInventoryRepository) GetBySubscriptionID(_ context.Context, subID string) (*inventory.Aggregate, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.aggs[subID], nil
}

func (m *mockInventoryRepository) Increment(context.Context, string, inventory.Totals) error {
	return nil
}

func (m *mockInventoryRepository) ReplaceTotals(_ context.Context, agg *inventory.Aggregate) error {
	m.replaced++
	m.aggs[agg.SubscriptionID()] = agg
	return nil
}

type passthroughTransactor struct{ calls int }

func (p *passthroughTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type mockLocker struct {
	locked   []string
	unlocked int
	Err      error
}

func (m *mockLocker) Lock(_ context.Context, subID string) (func(), error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.locked = append(m.locked, subID)
	return func() { m.unlocked++ }, nil
}
