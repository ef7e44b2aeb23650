package usecases

import "context"

// Transactor runs fn in a single database transaction carried by ctx.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SubscriptionLocker serialises writers of one subscription's ledger.
type SubscriptionLocker interface {
	Lock(ctx context.Context, subscriptionID string) (unlock func(), err error)
}
