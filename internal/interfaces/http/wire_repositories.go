package http

import (
	"gorm.io/gorm"

	"github.com/bdorababu707/goldvault-investment-module/internal/domain/admin"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/inventory"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/investment"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/plan"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/subscription"
	"github.com/bdorababu707/goldvault-investment-module/internal/domain/user"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/repository"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	adminRepo        admin.Repository
	userRepo         user.Repository
	planRepo         plan.Repository
	subscriptionRepo subscription.Repository
	inventoryRepo    inventory.Repository
	entryRepo        investment.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		adminRepo:        repository.NewAdminRepository(db, log),
		userRepo:         repository.NewUserRepository(db, log),
		planRepo:         repository.NewPlanRepository(db, log),
		subscriptionRepo: repository.NewSubscriptionRepository(db, log),
		inventoryRepo:    repository.NewInventoryRepository(db, log),
		entryRepo:        repository.NewInvestmentEntryRepository(db, log),
	}
}
