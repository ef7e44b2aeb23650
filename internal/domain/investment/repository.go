package investment

import "context"

// Repository is the append-only investment ledger.
type Repository interface {
	// Create appends an entry. A credited entry whose bonus credit key is
	// already taken fails with ErrBonusAlreadyCredited.
	Create(ctx context.Context, entry *Entry) error
	CountBySubscription(ctx context.Context, subscriptionID string) (int, error)
	// HasBonusCreditInMonth reports whether a credited entry exists for the
	// subscription and user in the given "YYYY-MM" month.
	HasBonusCreditInMonth(ctx context.Context, subscriptionID, userID, month string) (bool, error)
	// ListBySubscription returns entries ordered by deposit date.
	ListBySubscription(ctx context.Context, userID, subscriptionID string) ([]*Entry, error)
	// ListAllBySubscription returns every entry of a subscription regardless
	// of user, used for ledger replay.
	ListAllBySubscription(ctx context.Context, subscriptionID string) ([]*Entry, error)
}
