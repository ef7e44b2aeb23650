package http

import (
	"context"
	"fmt"

	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/auth"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/cache"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/email"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/pubsub"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/ratelimit"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/storage"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/goroutine"
)

const rateLimitKeyPrefix = "goldvault:ratelimit"

func (c *Container) initInfrastructure(ctx context.Context) error {
	c.repos = newRepositories(c.db, c.log)

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewArgon2PasswordHasher(c.cfg.Auth.Password)
	c.subscriptionLock = cache.NewSubscriptionLock(c.redis, c.cfg.Investment.LockTTL(), c.cfg.Investment.LockRetries, c.log)
	c.queue = pubsub.NewRedisNotificationQueue(c.redis, c.cfg.Notification.QueueKey, c.log)
	c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis, rateLimitKeyPrefix)

	store, err := storage.NewS3Uploader(ctx, c.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}
	c.objectStore = store

	return nil
}

// startNotificationWorker consumes the notification queue inside the API
// process. Deployments running cmd/worker disable it.
func (c *Container) startNotificationWorker() {
	if !c.cfg.Notification.InlineWorker {
		c.log.Infow("inline notification worker disabled")
		return
	}

	dispatcher := email.NewDispatcher(email.NewSMTPMailer(c.cfg.Email), c.log)
	consumer := pubsub.NewNotificationConsumer(
		c.redis,
		c.cfg.Notification.QueueKey,
		c.cfg.Notification.PollTimeoutDuration(),
		dispatcher.Handle,
		c.log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	c.workerCancel = cancel
	c.workerDone = goroutine.SafeGoWithContext(ctx, c.log, "notification-worker", consumer.Run)

	c.log.Infow("inline notification worker started", "queue", c.cfg.Notification.QueueKey)
}
