package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	userdto "github.com/bdorababu707/goldvault-investment-module/internal/application/user/dto"
	"github.com/bdorababu707/goldvault-investment-module/internal/application/user/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

type createUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*userdto.UserDTO, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, query usecases.ListUsersQuery) (*userdto.ListUsersResult, error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, userID string) (*userdto.UserDTO, error)
}

type UserHandler struct {
	createUserUC createUserUseCase
	listUsersUC  listUsersUseCase
	getUserUC    getUserUseCase
	logger       logger.Interface
}

func NewUserHandler(
	createUserUC createUserUseCase,
	listUsersUC listUsersUseCase,
	getUserUC getUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		listUsersUC:  listUsersUC,
		getUserUC:    getUserUC,
		logger:       logger,
	}
}

type CreateUserRequest struct {
	Email              string             `json:"email" binding:"required,email"`
	CountryCode        string             `json:"country_code" binding:"required"`
	PhoneNumber        string             `json:"phone_number" binding:"required"`
	Country            string             `json:"country" binding:"required"`
	FullName           string             `json:"full_name" binding:"required"`
	DateOfBirth        string             `json:"date_of_birth"`
	Nationality        string             `json:"nationality"`
	CountryOfResidence string             `json:"country_of_residence"`
	CountryOfBirth     string             `json:"country_of_birth"`
	FullAddress        string             `json:"full_address"`
	KYCDocuments       *user.KYCDocuments `json:"kyc_documents"`
}

// CreateUser handles POST /v1/admin/user-service/create-user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.CreateUserCommand{
		Profile: user.Profile{
			Email:              req.Email,
			PhoneNumber:        req.PhoneNumber,
			Country:            req.Country,
			CountryCode:        req.CountryCode,
			FullName:           req.FullName,
			DateOfBirth:        req.DateOfBirth,
			Nationality:        req.Nationality,
			CountryOfResidence: req.CountryOfResidence,
			CountryOfBirth:     req.CountryOfBirth,
			FullAddress:        req.FullAddress,
		},
		ActorEmail: actorEmail(c),
	}
	if req.KYCDocuments != nil {
		cmd.KYCDocuments = *req.KYCDocuments
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "User created successfully", result)
}

// ListUsers handles GET /v1/admin/user-service/all-users?page=&page_size=
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, "Users fetched successfully", result.Users, result.Total, result.Page, result.PageSize)
}

// GetUser handles GET /v1/admin/user-service/user-id?user_id=
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := requiredQuery(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User fetched successfully", result)
}
