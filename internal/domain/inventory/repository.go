package inventory

import "context"

// Repository persists inventory aggregates, one per subscription.
// Getters return nil, nil when no aggregate exists.
type Repository interface {
	Create(ctx context.Context, agg *Aggregate) error
	GetBySubscription(ctx context.Context, userID, subscriptionID string) (*Aggregate, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (*Aggregate, error)
	// Increment adds delta to the running totals in a single UPDATE.
	// It returns ErrInventoryNotFound when no row was touched.
	Increment(ctx context.Context, subscriptionID string, delta Totals) error
	// ReplaceTotals overwrites the totals with values recomputed from the ledger.
	ReplaceTotals(ctx context.Context, agg *Aggregate) error
}
