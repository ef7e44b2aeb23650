package http

import (
	"context"

	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/database"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/handlers"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	planHandler         *handlers.PlanHandler
	subscriptionHandler *handlers.SubscriptionHandler
	inventoryHandler    *handlers.InventoryHandler
	investmentHandler   *handlers.InvestmentHandler
	uploadHandler       *handlers.UploadHandler
	healthHandler       *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	u := c.ucs

	c.hdlrs = &allHandlers{
		authHandler: handlers.NewAuthHandler(u.createSuperAdminUC, u.createAdminUC, u.loginUC, u.getCurrentAdminUC, c.log),
		userHandler: handlers.NewUserHandler(u.createUserUC, u.listUsersUC, u.getUserUC, c.log),
		planHandler: handlers.NewPlanHandler(u.createPlanUC, u.updatePlanUC, u.getPlanUC, u.listPlansUC, c.log),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			u.createSubscriptionUC, u.listUserSubscriptionsUC, u.listTransactionsUC, c.log,
		),
		inventoryHandler:  handlers.NewInventoryHandler(u.getInventoryUC, u.reconcileUC, c.log),
		investmentHandler: handlers.NewInvestmentHandler(u.createEntryUC, c.log),
		uploadHandler:     handlers.NewUploadHandler(u.uploadFilesUC, c.log),
		healthHandler: handlers.NewHealthHandler(map[string]handlers.Pinger{
			"database": func(ctx context.Context) error { return database.Ping(ctx, c.db) },
			"redis":    func(ctx context.Context) error { return c.redis.Ping(ctx).Err() },
		}, c.log),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(u.authenticateUC, c.log)
	c.rateLimit = middleware.NewRateLimit(c.rateLimiter, c.log)
}
