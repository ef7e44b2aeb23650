package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bdorababu707/goldvault-investment-module/internal/application/admin/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
)

// AuthHandler serves admin registration, login and profile endpoints.
type AuthHandler struct {
	createSuperAdminUC createSuperAdminUseCase
	createAdminUC      createAdminUseCase
	loginUC            loginUseCase
	getCurrentAdminUC  getCurrentAdminUseCase
	logger             logger.Interface
}

func NewAuthHandler(
	createSuperAdminUC createSuperAdminUseCase,
	createAdminUC createAdminUseCase,
	loginUC loginUseCase,
	getCurrentAdminUC getCurrentAdminUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		createSuperAdminUC: createSuperAdminUC,
		createAdminUC:      createAdminUC,
		loginUC:            loginUC,
		getCurrentAdminUC:  getCurrentAdminUC,
		logger:             logger,
	}
}

type RegisterAdminRequest struct {
	Firstname   string `json:"firstname" binding:"required"`
	Surname     string `json:"surname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Country     string `json:"country" binding:"required"`
	CountryCode string `json:"country_code" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

func (r RegisterAdminRequest) profile() admin.Profile {
	return admin.Profile{
		Firstname:   r.Firstname,
		Surname:     r.Surname,
		Email:       r.Email,
		Country:     r.Country,
		CountryCode: r.CountryCode,
		PhoneNumber: r.PhoneNumber,
	}
}

type CreateAdminRequest struct {
	RegisterAdminRequest
	UserRoles []string `json:"user_roles"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateSuperAdmin handles POST /v1/admin/auth/create-super-admin?secret_key=
func (h *AuthHandler) CreateSuperAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create super admin", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createSuperAdminUC.Execute(c.Request.Context(), usecases.CreateSuperAdminCommand{
		Profile:   req.profile(),
		Password:  req.Password,
		SecretKey: c.Query("secret_key"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, "Super admin created successfully", result)
}

// CreateDeptAdmin handles POST /v1/admin/auth/create-dept-admin
func (h *AuthHandler) CreateDeptAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create dept admin", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	h.createAdmin(c, admin.RoleDeptAdmin, req, nil, "Department Admin created successfully")
}

// CreateAdmin handles POST /v1/admin/auth/create-admin
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create admin", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	h.createAdmin(c, admin.RoleAdmin, req.RegisterAdminRequest, req.UserRoles, "Admin created successfully")
}

func (h *AuthHandler) createAdmin(c *gin.Context, role admin.Role, req RegisterAdminRequest, userRoles []string, comment string) {
	actor, err := currentAdmin(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createAdminUC.Execute(c.Request.Context(), usecases.CreateAdminCommand{
		Actor:     actor,
		Role:      role,
		Profile:   req.profile(),
		Password:  req.Password,
		UserRoles: userRoles,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, comment, result)
}

// Login handles POST /v1/admin/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// GetCurrentAdmin handles GET /v1/admin/auth/me
func (h *AuthHandler) GetCurrentAdmin(c *gin.Context) {
	actor, err := currentAdmin(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCurrentAdminUC.Execute(c.Request.Context(), actor.ID())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Current user details fetched successfully", result)
}
