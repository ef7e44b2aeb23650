package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/subscription/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscriptionUC    createSubscriptionUseCase
	listUserSubscriptionsUC listUserSubscriptionsUseCase
	listTransactionsUC      listTransactionsUseCase
	logger                  logger.Interface
}

func NewSubscriptionHandler(
	createSubscriptionUC createSubscriptionUseCase,
	listUserSubscriptionsUC listUserSubscriptionsUseCase,
	listTransactionsUC listTransactionsUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC:    createSubscriptionUC,
		listUserSubscriptionsUC: listUserSubscriptionsUC,
		listTransactionsUC:      listTransactionsUC,
		logger:                  logger,
	}
}

type CreateSubscriptionRequest struct {
	UserID        string `json:"user_id" binding:"required"`
	PlanID        string `json:"plan_id" binding:"required"`
	PlanStartDate string `json:"plan_start_date" binding:"required,ddmmyyyy"`
}

// CreateSubscription handles POST /v1/admin/subscriptions/create-user-subscription
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createSubscriptionUC.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		UserID:        req.UserID,
		PlanID:        req.PlanID,
		PlanStartDate: req.PlanStartDate,
		ActorEmail:    actorEmail(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Subscription created successfully", result)
}

// ListUserSubscriptions handles GET /v1/admin/subscriptions/user-id?user_id=
func (h *SubscriptionHandler) ListUserSubscriptions(c *gin.Context) {
	userID, err := requiredQuery(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUserSubscriptionsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User subscriptions fetched successfully", result)
}

// ListTransactions handles GET /v1/admin/subscriptions/transactions?user_id=&subscription_id=
func (h *SubscriptionHandler) ListTransactions(c *gin.Context) {
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

	result, err := h.listTransactionsUC.Execute(c.Request.Context(), userID, subscriptionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Successfully fetched investment entries", result)
}
