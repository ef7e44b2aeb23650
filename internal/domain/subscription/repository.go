package subscription

import "context"

// Repository persists subscriptions. GetByID returns nil, nil when absent.
type Repository interface {
	Create(ctx context.Context, sub *Subscription) error
	GetByID(ctx context.Context, id string) (*Subscription, error)
	ListByUserID(ctx context.Context, userID string) ([]*Subscription, error)
	// ListIDs returns every subscription ID, used by inventory reconciliation.
	ListIDs(ctx context.Context) ([]string, error)
}
