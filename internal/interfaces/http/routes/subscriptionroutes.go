package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/handlers"
)

// SubscriptionRouteConfig holds dependencies for subscription, inventory and
// investment routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler *handlers.SubscriptionHandler
	InventoryHandler    *handlers.InventoryHandler
	InvestmentHandler   *handlers.InvestmentHandler
}

// SetupSubscriptionRoutes configures /admin/subscriptions, /admin/inventory
// and /admin/investment routes.
func SetupSubscriptionRoutes(adminGroup *gin.RouterGroup, cfg *SubscriptionRouteConfig) {
	subscriptions := adminGroup.Group("/subscriptions")
	{
		subscriptions.POST("/create-user-subscription", cfg.SubscriptionHandler.CreateSubscription)
		subscriptions.GET("/user-id", cfg.SubscriptionHandler.ListUserSubscriptions)
		subscriptions.GET("/transactions", cfg.SubscriptionHandler.ListTransactions)
	}

	inventory := adminGroup.Group("/inventory")
	{
		inventory.GET("/user-subscription-inventory", cfg.InventoryHandler.GetUserSubscriptionInventory)
		inventory.POST("/recompute", cfg.InventoryHandler.Recompute)
	}

	investment := adminGroup.Group("/investment")
	{
		investment.POST("/investment-entry-for-subscription", cfg.InvestmentHandler.CreateInvestmentEntry)
	}
}
