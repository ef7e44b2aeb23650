package http

import (
	adminUsecases "github.com/bdorababu707/goldvault-investment-module/internal/application/admin/usecases"
	inventoryUsecases "github.com/bdorababu707/goldvault-investment-module/internal/application/inventory/usecases"
	investmentUsecases "github.com/bdorababu707/goldvault-investment-module/internal/application/investment/usecases"
	planUsecases "github.com/bdorababu707/goldvault-investment-module/internal/application/plan/usecases"
	subscriptionUsecases "github.com/bdorababu707/goldvault-investment-module/internal/application/subscription/usecases"
	uploadUsecases "github.com/bdorababu707/goldvault-investment-module/internal/application/upload/usecases"
	userUsecases "github.com/bdorababu707/goldvault-investment-module/internal/application/user/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/db"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Admin / Auth
	createSuperAdminUC *adminUsecases.CreateSuperAdminUseCase
	createAdminUC      *adminUsecases.CreateAdminUseCase
	loginUC            *adminUsecases.LoginUseCase
	authenticateUC     *adminUsecases.AuthenticateUseCase
	getCurrentAdminUC  *adminUsecases.GetCurrentAdminUseCase

	// User
	createUserUC *userUsecases.CreateUserUseCase
	listUsersUC  *userUsecases.ListUsersUseCase
	getUserUC    *userUsecases.GetUserUseCase

	// Plan
	createPlanUC *planUsecases.CreatePlanUseCase
	updatePlanUC *planUsecases.UpdatePlanUseCase
	getPlanUC    *planUsecases.GetPlanUseCase
	listPlansUC  *planUsecases.ListPlansUseCase

	// Subscription
	createSubscriptionUC    *subscriptionUsecases.CreateSubscriptionUseCase
	listUserSubscriptionsUC *subscriptionUsecases.ListUserSubscriptionsUseCase
	listTransactionsUC      *subscriptionUsecases.ListTransactionsUseCase

	// Inventory
	getInventoryUC *inventoryUsecases.GetInventoryUseCase
	reconcileUC    *inventoryUsecases.ReconcileInventoryUseCase
	reconcileAllUC *inventoryUsecases.ReconcileAllInventoriesUseCase

	// Investment
	createEntryUC *investmentUsecases.CreateInvestmentEntryUseCase

	// Upload
	uploadFilesUC *uploadUsecases.UploadFilesUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	cfg := c.cfg
	currency := cfg.Investment.DefaultCurrency
	txMgr := db.NewTransactionManager(c.db)
	policy := investment.NewBonusPolicy(cfg.Investment.CycleDays)

	reconcileUC := inventoryUsecases.NewReconcileInventoryUseCase(
		r.subscriptionRepo, r.entryRepo, r.inventoryRepo, txMgr, c.subscriptionLock, currency, c.log,
	)

	c.ucs = &allUseCases{
		createSuperAdminUC: adminUsecases.NewCreateSuperAdminUseCase(r.adminRepo, c.hasher, cfg.Auth.SuperAdminSecretKey, c.log),
		createAdminUC:      adminUsecases.NewCreateAdminUseCase(r.adminRepo, c.hasher, c.log),
		loginUC:            adminUsecases.NewLoginUseCase(r.adminRepo, c.hasher, c.jwtSvc, c.log),
		authenticateUC:     adminUsecases.NewAuthenticateUseCase(r.adminRepo, c.jwtSvc, c.log),
		getCurrentAdminUC:  adminUsecases.NewGetCurrentAdminUseCase(r.adminRepo, c.log),

		createUserUC: userUsecases.NewCreateUserUseCase(r.userRepo, c.queue, c.log),
		listUsersUC:  userUsecases.NewListUsersUseCase(r.userRepo, c.log),
		getUserUC:    userUsecases.NewGetUserUseCase(r.userRepo, c.log),

		createPlanUC: planUsecases.NewCreatePlanUseCase(r.planRepo, c.log),
		updatePlanUC: planUsecases.NewUpdatePlanUseCase(r.planRepo, c.log),
		getPlanUC:    planUsecases.NewGetPlanUseCase(r.planRepo, c.log),
		listPlansUC:  planUsecases.NewListPlansUseCase(r.planRepo, c.log),

		createSubscriptionUC: subscriptionUsecases.NewCreateSubscriptionUseCase(
			r.userRepo, r.planRepo, r.subscriptionRepo, r.inventoryRepo, c.queue, currency, c.log,
		),
		listUserSubscriptionsUC: subscriptionUsecases.NewListUserSubscriptionsUseCase(r.subscriptionRepo, c.log),
		listTransactionsUC:      subscriptionUsecases.NewListTransactionsUseCase(r.entryRepo, c.log),

		getInventoryUC: inventoryUsecases.NewGetInventoryUseCase(r.inventoryRepo, c.log),
		reconcileUC:    reconcileUC,
		reconcileAllUC: inventoryUsecases.NewReconcileAllInventoriesUseCase(r.subscriptionRepo, reconcileUC, c.log),

		createEntryUC: investmentUsecases.NewCreateInvestmentEntryUseCase(
			r.subscriptionRepo, r.entryRepo, r.inventoryRepo, r.userRepo,
			c.subscriptionLock, c.queue, policy, currency, c.log,
		),

		uploadFilesUC: uploadUsecases.NewUploadFilesUseCase(c.objectStore, cfg.Storage, c.log),
	}
}
