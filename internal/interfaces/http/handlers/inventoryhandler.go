package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	inventorydto "github.com/bdorababu707/goldvault-investment-module/internal/application/inventory/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

type getInventoryUseCase interface {
	Execute(ctx context.Context, userID, subscriptionID string) (*inventorydto.InventoryDTO, error)
}

type reconcileInventoryUseCase interface {
	Execute(ctx context.Context, subscriptionID string) (*inventorydto.ReconcileResultDTO, error)
}

type InventoryHandler struct {
	getInventoryUC       getInventoryUseCase
	reconcileInventoryUC reconcileInventoryUseCase
	logger               logger.Interface
}

func NewInventoryHandler(
	getInventoryUC getInventoryUseCase,
	reconcileInventoryUC reconcileInventoryUseCase,
	logger logger.Interface,
) *InventoryHandler {
	return &InventoryHandler{
		getInventoryUC:       getInventoryUC,
		reconcileInventoryUC: reconcileInventoryUC,
		logger:               logger,
	}
}

// GetUserSubscriptionInventory handles GET /v1/admin/inventory/user-subscription-inventory?user_id=&subscription_id=
func (h *InventoryHandler) GetUserSubscriptionInventory(c *gin.Context) {
	userID, err := requiredQuery(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	subscriptionID, err := requiredQuery(c, "subscription_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getInventoryUC.Execute(c.Request.Context(), userID, subscriptionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User subscription inventory fetched successfully", result)
}

// Recompute handles POST /v1/admin/inventory/recompute?subscription_id=
func (h *InventoryHandler) Recompute(c *gin.Context) {
	subscriptionID, err := requiredQuery(c, "subscription_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reconcileInventoryUC.Execute(c.Request.Context(), subscriptionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("inventory recomputed via api",
		"subscription_id", subscriptionID,
		"drifted", result.Drifted,
		"provisioned", result.Provisioned,
		"actor", actorEmail(c),
	)
	utils.SuccessResponse(c, http.StatusOK, "Inventory recomputed successfully", result)
}
