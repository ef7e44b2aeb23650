// Package pubsub moves notification messages between the API and the
// worker over a Redis list.
package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

const DefaultQueueKey = "goldvault:notifications"

// RedisNotificationQueue implements notification.Queue with LPUSH; the
// consumer pops with BRPOP so messages are handled in FIFO order.
type RedisNotificationQueue struct {
	client *redis.Client
	key    string
	logger logger.Interface
}

func NewRedisNotificationQueue(client *redis.Client, key string, logger logger.Interface) *RedisNotificationQueue {
	if key == "" {
		key = DefaultQueueKey
	}
	return &RedisNotificationQueue{client: client, key: key, logger: logger}
}

func (q *RedisNotificationQueue) Enqueue(ctx context.Context, msg notification.Message) error {
	if !msg.Kind.IsValid() {
		return fmt.Errorf("unknown notification kind: %s", msg.Kind)
	}
	if msg.EnqueuedAt.IsZero() {
		msg.EnqueuedAt = biztime.NowUTC()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		q.logger.Errorw("failed to enqueue notification", "kind", msg.Kind, "error", err)
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}

	q.logger.Debugw("notification enqueued", "kind", msg.Kind)
	return nil
}

// Handler processes one message. Errors are logged by the consumer and the
// message is dropped.
type Handler func(ctx context.Context, msg notification.Message) error

// NotificationConsumer drains the queue until its context is cancelled.
type NotificationConsumer struct {
	client      *redis.Client
	key         string
	pollTimeout time.Duration
	handler     Handler
	logger      logger.Interface
}

func NewNotificationConsumer(client *redis.Client, key string, pollTimeout time.Duration, handler Handler, logger logger.Interface) *NotificationConsumer {
	if key == "" {
		key = DefaultQueueKey
	}
	if pollTimeout <= 0 {
		pollTimeout = 5 * time.Second
	}
	return &NotificationConsumer{
		client:      client,
		key:         key,
		pollTimeout: pollTimeout,
		handler:     handler,
		logger:      logger,
	}
}

// Run blocks until ctx is done.
func (c *NotificationConsumer) Run(ctx context.Context) {
	c.logger.Infow("notification consumer started", "queue", c.key)
	for {
		if ctx.Err() != nil {
			c.logger.Infow("notification consumer stopped")
			return
		}

		handled, err := c.ProcessOne(ctx)
		if err != nil && ctx.Err() == nil {
			c.logger.Errorw("failed to process notification", "error", err)
			if !handled {
				// Redis itself failed; back off before polling again.
				select {
				case <-ctx.Done():
				case <-time.After(time.Second):
				}
			}
		}
	}
}

// ProcessOne waits up to the poll timeout for a message and handles it.
// handled is true when a message was popped, whatever the handler returned.
func (c *NotificationConsumer) ProcessOne(ctx context.Context) (handled bool, err error) {
	result, err := c.client.BRPop(ctx, c.pollTimeout, c.key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to pop notification: %w", err)
	}

	// BRPOP returns [key, value].
	var msg notification.Message
	if err := json.Unmarshal([]byte(result[1]), &msg); err != nil {
		return true, fmt.Errorf("failed to decode notification: %w", err)
	}

	if err := c.handler(ctx, msg); err != nil {
		return true, fmt.Errorf("failed to handle %s notification: %w", msg.Kind, err)
	}
	return true, nil
}
