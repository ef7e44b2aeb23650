package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// ErrLockNotAcquired is returned when the lock stays held for every retry.
var ErrLockNotAcquired = errors.New("subscription lock not acquired")

const subscriptionLockPrefix = "goldvault:lock:subscription:"

// releaseScript deletes the key only when it still holds our token, so a
// holder whose TTL expired cannot release somebody else's lock.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SubscriptionLock serialises ledger writes for one subscription across
// every API instance.
type SubscriptionLock struct {
	client     *redis.Client
	ttl        time.Duration
	retries    int
	retryDelay time.Duration
	logger     logger.Interface
}

func NewSubscriptionLock(client *redis.Client, ttl time.Duration, retries int, logger logger.Interface) *SubscriptionLock {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if retries < 0 {
		retries = 0
	}
	return &SubscriptionLock{
		client:     client,
		ttl:        ttl,
		retries:    retries,
		retryDelay: 50 * time.Millisecond,
		logger:     logger,
	}
}

// Lock blocks until the subscription lock is held or retries run out. The
// returned func releases it and is safe to call once.
func (l *SubscriptionLock) Lock(ctx context.Context, subscriptionID string) (func(), error) {
	key := subscriptionLockPrefix + subscriptionID
	token := uuid.NewString()

	for attempt := 0; ; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire subscription lock: %w", err)
		}
		if ok {
			return func() { l.release(key, token, subscriptionID) }, nil
		}
		if attempt >= l.retries {
			return nil, fmt.Errorf("%w: %s", ErrLockNotAcquired, subscriptionID)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
}

// release runs on a background context so it still happens after the request
// was cancelled. A failed release leaves the lock until its TTL expires.
func (l *SubscriptionLock) release(key, token, subscriptionID string) {
	if err := releaseScript.Run(context.Background(), l.client, []string{key}, token).Err(); err != nil {
		l.logger.Warnw("failed to release subscription lock, held until ttl expires",
			"subscription_id", subscriptionID,
			"ttl", l.ttl,
			"error", err,
		)
	}
}
