package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http/handlers"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler *handlers.PlanHandler
}

// SetupPlanRoutes configures /admin/plans routes.
func SetupPlanRoutes(adminGroup *gin.RouterGroup, cfg *PlanRouteConfig) {
	plans := adminGroup.Group("/plans")
	{
		plans.POST("/create", cfg.PlanHandler.CreatePlan)
		plans.GET("/all", cfg.PlanHandler.ListPlans)
		plans.GET("/id", cfg.PlanHandler.GetPlan)
		plans.PATCH("/update-plan", cfg.PlanHandler.UpdatePlan)
	}
}
