package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/ratelimit"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/handlers"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for admin authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      *middleware.RateLimit
	LoginRule      ratelimit.Rule
}

// SetupAuthRoutes configures /admin/auth routes.
func SetupAuthRoutes(adminGroup *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := adminGroup.Group("/auth")
	{
		// Guarded by the bootstrap secret instead of a token.
		auth.POST("/create-super-admin", cfg.AuthHandler.CreateSuperAdmin)
		auth.POST("/login", cfg.RateLimit.LimitFailures("login", cfg.LoginRule), cfg.AuthHandler.Login)

		protected := auth.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.POST("/create-dept-admin", cfg.AuthHandler.CreateDeptAdmin)
			protected.POST("/create-admin", cfg.AuthHandler.CreateAdmin)
			protected.GET("/me", cfg.AuthHandler.GetCurrentAdmin)
		}
	}
}
