package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	investmentdto "github.com/bdorababu707/goldvault-investment-module/internal/application/investment/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/application/investment/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

type createInvestmentEntryUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateInvestmentEntryCommand) (*investmentdto.InvestmentEntryDTO, error)
}

type InvestmentHandler struct {
	createEntryUC createInvestmentEntryUseCase
	logger        logger.Interface
}

func NewInvestmentHandler(createEntryUC createInvestmentEntryUseCase, logger logger.Interface) *InvestmentHandler {
	return &InvestmentHandler{
		createEntryUC: createEntryUC,
		logger:        logger,
	}
}

type CreateInvestmentEntryRequest struct {
	UserID               string  `json:"user_id" binding:"required"`
	SubscriptionID       string  `json:"subscription_id" binding:"required"`
	DepositDate          string  `json:"deposit_date" binding:"required,ddmmyyyy"`
	AmountInvested       float64 `json:"amount_invested" binding:"required,gt=0"`
	GoldRate             float64 `json:"gold_rate" binding:"required,gt=0"`
	GramsPurchased       float64 `json:"grams_purchased" binding:"required,gt=0"`
	PaymentMethod        string  `json:"payment_method" binding:"required,oneof=CASH CARD BANK_TRANSFER"`
	TransactionRef       string  `json:"transaction_ref"`
	PaymentProofURL      string  `json:"payment_proof_url"`
	Remarks              string  `json:"remarks"`
}

// CreateInvestmentEntry handles POST /v1/admin/investment/investment-entry-for-subscription
func (h *InvestmentHandler) CreateInvestmentEntry(c *gin.Context) {
	var req CreateInvestmentEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for investment entry", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createEntryUC.Execute(c.Request.Context(), usecases.CreateInvestmentEntryCommand{
		UserID:          req.UserID,
		SubscriptionID:  req.SubscriptionID,
		DepositDate:     req.DepositDate,
		AmountInvested:  req.AmountInvested,
		GoldRate:        req.GoldRate,
		GramsPurchased:  req.GramsPurchased,
		PaymentMethod:   req.PaymentMethod,
		TransactionRef:  req.TransactionRef,
		PaymentProofURL: req.PaymentProofURL,
		Remarks:         req.Remarks,
		ActorEmail:      actorEmail(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Investment entry created successfully", result)
}
