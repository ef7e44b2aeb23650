package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/plan/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC createPlanUseCase
	updatePlanUC updatePlanUseCase
	getPlanUC    getPlanUseCase
	listPlansUC  listPlansUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	getPlanUC getPlanUseCase,
	listPlansUC listPlansUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		logger:       logger,
	}
}

type CreatePlanRequest struct {
	PlanName                string  `json:"plan_name" binding:"required"`
	Description             string  `json:"description"`
	BonusPercentage         float64 `json:"bonus_percentage" binding:"gte=0"`
	RelaxationDays          int     `json:"relaxation_days" binding:"gte=0"`
	MinimumInvestmentAmount int     `json:"minimum_investment_amount" binding:"required,gt=0"`
}

// UpdatePlanRequest carries only the fields to change.
type UpdatePlanRequest struct {
	PlanName        *string  `json:"plan_name" binding:"omitempty,min=1"`
	Description     *string  `json:"description"`
	BonusPercentage *float64 `json:"bonus_percentage" binding:"omitempty,gte=0"`
	RelaxationDays  *int     `json:"relaxation_days" binding:"omitempty,gte=0"`
	Status          *string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// CreatePlan handles POST /v1/admin/plans/create
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		PlanName:                req.PlanName,
		Description:             req.Description,
		BonusPercentage:         req.BonusPercentage,
		RelaxationDays:          req.RelaxationDays,
		MinimumInvestmentAmount: req.MinimumInvestmentAmount,
		ActorEmail:              actorEmail(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Investment plan created successfully", result)
}

// ListPlans handles GET /v1/admin/plans/all
func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Investment plans fetched successfully", result)
}

// GetPlan handles GET /v1/admin/plans/id?plan_id=
func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := requiredQuery(c, "plan_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Investment plan fetched successfully", result)
}

// UpdatePlan handles PATCH /v1/admin/plans/update-plan?plan_id=
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, err := requiredQuery(c, "plan_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_id", planID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanID:          planID,
		PlanName:        req.PlanName,
		Description:     req.Description,
		BonusPercentage: req.BonusPercentage,
		RelaxationDays:  req.RelaxationDays,
		Status:          req.Status,
		ActorEmail:      actorEmail(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Investment plan updated successfully", result)
}
