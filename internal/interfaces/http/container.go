package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUsecases "github.com/bdorababu707/goldvault-investment-module/internal/application/admin/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/notification"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/cache"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/config"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/ratelimit"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/storage"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/middleware"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers of the API process, plus the inline notification worker.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimit

	// Infrastructure services
	jwtSvc           adminUsecases.TokenService
	hasher           admin.PasswordHasher
	subscriptionLock *cache.SubscriptionLock
	queue            notification.Queue
	rateLimiter      ratelimit.RateLimiter
	objectStore      *storage.S3Uploader

	// Background
	workerCancel context.CancelFunc
	workerDone   <-chan struct{}
}

// NewContainer wires every component against the given database and Redis
// client. The caller owns both connections.
func NewContainer(ctx context.Context, cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

// StartBackgroundServices launches the inline notification worker when enabled.
func (c *Container) StartBackgroundServices() {
	c.startNotificationWorker()
}

// Shutdown stops background services and waits for the worker to exit or
// ctx to expire.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.workerCancel == nil {
		return nil
	}

	c.workerCancel()
	select {
	case <-c.workerDone:
		c.log.Infow("notification worker stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notification worker did not stop: %w", ctx.Err())
	}
}
