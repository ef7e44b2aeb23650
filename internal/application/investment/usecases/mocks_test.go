package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
)

type mockSubscriptionRepository struct {
	subs map[string]*subscription.Subscription
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

func (m *mockSubscriptionRepository) ListIDs(context.Context) ([]string, error) { return nil, nil }

// memoryLedger enforces one bonus credit key per subscription month like the
// unique index on investment_entries.
type memoryLedger struct {
	entries []*investment.Entry
	keys    map[string]bool

	CreateErr func(e *investment.Entry) error
	creates   int
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{keys: make(map[string]bool)}
}

func (m *memoryLedger) Create(_ context.Context, e *investment.Entry) error {
	m.creates++
	if m.CreateErr != nil {
		if err := m.CreateErr(e); err != nil {
			return err
		}
	}
	if key := e.BonusCreditKey(); key != nil {
		if m.keys[*key] {
			return investment.ErrBonusAlreadyCredited
		}
		m.keys[*key] = true
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryLedger) CountBySubscription(_ context.Context, subID string) (int, error) {
	n := 0
	for _, e := range m.entries {
		if e.SubscriptionID() == subID {
			n++
		}
	}
	return n, nil
}

func (m *memoryLedger) HasBonusCreditInMonth(_ context.Context, subID, userID, month string) (bool, error) {
	for _, e := range m.entries {
		if e.SubscriptionID() == subID && e.UserID() == userID && e.IsBonusCredited() && e.DepositMonth() == month {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryLedger) ListBySubscription(ctx context.Context, _, subID string) ([]*investment.Entry, error) {
	return m.ListAllBySubscription(ctx, subID)
}

func (m *memoryLedger) ListAllBySubscription(_ context.Context, subID string) ([]*investment.Entry, error) {
	var out []*investment.Entry
	for _, e := range m.entries {
		if e.SubscriptionID() == subID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DepositDate().Before(out[j].DepositDate()) })
	return out, nil
}

type memoryInventory struct {
	aggs         map[string]*inventory.Aggregate
	IncrementErr error
}

func (m *memoryInventory) Create(_ context.Context, agg *inventory.Aggregate) error {
	m.aggs[agg.SubscriptionID()] = agg
	return nil
}

func (m *memoryInventory) GetBySubscription(_ context.Context, _, subID string) (*inventory.Aggregate, error) {
	return m.aggs[subID], nil
}

func (m *memoryInventory) GetBySubscriptionID(_ context.Context, subID string) (*inventory.Aggregate, error) {
	return m.aggs[subID], nil
}

func (m *memoryInventory) Increment(_ context.Context, subID string, delta inventory.Totals) error {
	if m.IncrementErr != nil {
		return m.IncrementErr
	}
	agg := m.aggs[subID]
	if agg == nil {
		return inventory.ErrInventoryNotFound
	}
	t := agg.Totals()
	agg.ReplaceTotals(inventory.Totals{
		InvestedAmount:        t.InvestedAmount + delta.InvestedAmount,
		GoldGrams24K:          t.GoldGrams24K + delta.GoldGrams24K,
		BonusPercentageEarned: t.BonusPercentageEarned + delta.BonusPercentageEarned,
	})
	return nil
}

func (m *memoryInventory) ReplaceTotals(_ context.Context, agg *inventory.Aggregate) error {
	m.aggs[agg.SubscriptionID()] = agg
	return nil
}

type mockUserRepository struct {
	users map[string]*user.User
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }

func (m *mockUserRepository) GetByID(_ context.Context, id string) (*user.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepository) GetByEmail(context.Context, string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(context.Context, user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockLocker struct {
	Err      error
	held     bool
	acquired int
}

func (m *mockLocker) Lock(context.Context, string) (func(), error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.held = true
	m.acquired++
	return func() { m.held = false }, nil
}

type mockQueue struct {
	Messages []notification.Message
	Err      error
}

func (m *mockQueue) Enqueue(_ context.Context, msg notification.Message) error {
	if m.Err != nil {
		return m.Err
	}
	msg.EnqueuedAt = time.Now()
	m.Messages = append(m.Messages, msg)
	return nil
}
