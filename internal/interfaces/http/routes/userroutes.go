package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/handlers"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler *handlers.UserHandler
}

// SetupUserRoutes configures /admin/user-service routes. adminGroup must
// already require authentication.
func SetupUserRoutes(adminGroup *gin.RouterGroup, cfg *UserRouteConfig) {
	users := adminGroup.Group("/user-service")
	{
		users.POST("/create-user", cfg.UserHandler.CreateUser)
		users.GET("/all-users", cfg.UserHandler.ListUsers)
		users.GET("/user-id", cfg.UserHandler.GetUser)
	}
}
