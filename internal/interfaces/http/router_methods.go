package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/ratelimit"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/middleware"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/routes"
)

// SetupRoutes installs global middleware and every route group.
func (r *Router) SetupRoutes() {
	c := r.c

	r.engine.Use(
		middleware.RequestID(),
		middleware.Logger(c.log),
		middleware.Recovery(c.log),
		middleware.CORS(c.cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
	)

	r.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	v1 := r.engine.Group("/v1")
	adminGroup := v1.Group("/admin")

	routes.SetupAuthRoutes(adminGroup, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimit:      c.rateLimit,
		LoginRule: ratelimit.Rule{
			Limit:  c.cfg.Auth.LoginRateLimit,
			Window: c.cfg.Auth.LoginRateWindow(),
		},
	})

	protected := adminGroup.Group("")
	protected.Use(c.authMiddleware.RequireAuth())

	routes.SetupUserRoutes(protected, &routes.UserRouteConfig{
		UserHandler: c.hdlrs.userHandler,
	})
	routes.SetupPlanRoutes(protected, &routes.PlanRouteConfig{
		PlanHandler: c.hdlrs.planHandler,
	})
	routes.SetupSubscriptionRoutes(protected, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: c.hdlrs.subscriptionHandler,
		InventoryHandler:    c.hdlrs.inventoryHandler,
		InvestmentHandler:   c.hdlrs.investmentHandler,
	})

	routes.SetupUploadRoutes(v1, &routes.UploadRouteConfig{
		UploadHandler:  c.hdlrs.uploadHandler,
		AuthMiddleware: c.authMiddleware,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown stops the container's background services.
func (r *Router) Shutdown(ctx context.Context) error {
	return r.c.Shutdown(ctx)
}
