// Package reconcile rebuilds inventory aggregates from the investment ledger.
package reconcile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	inventoryUsecases "github.com/bdorababu707/goldvault-investment-module/internal/application/inventory/usecases"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/cache"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/config"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/repository"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/cli/runtime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/db"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

var (
	env            string
	configPath     string
	subscriptionID string
)

// UseCases are the single and batch reconcile operations.
type UseCases struct {
	One *inventoryUsecases.ReconcileInventoryUseCase
	All *inventoryUsecases.ReconcileAllInventoriesUseCase
}

// NewUseCases wires the reconcile use cases against db and the shared
// subscription lock in Redis.
func NewUseCases(gormDB *gorm.DB, client *redis.Client, cfg *config.Config, log logger.Interface) *UseCases {
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB, log)
	one := inventoryUsecases.NewReconcileInventoryUseCase(
		subscriptionRepo,
		repository.NewInvestmentEntryRepository(gormDB, log),
		repository.NewInventoryRepository(gormDB, log),
		db.NewTransactionManager(gormDB),
		cache.NewSubscriptionLock(client, cfg.Investment.LockTTL(), cfg.Investment.LockRetries, log),
		cfg.Investment.DefaultCurrency,
		log,
	)
	return &UseCases{
		One: one,
		All: inventoryUsecases.NewReconcileAllInventoriesUseCase(subscriptionRepo, one, log),
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute inventory totals from the investment ledger",
		Long: `Replay the investment entries of one subscription, or of every subscription,
and overwrite inventory totals that drifted from the ledger.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&subscriptionID, "subscription", "s", "", "Subscription ID to reconcile (default: all)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := runtime.Open(cmd.Context(), runtime.ResolveEnv(env), configPath, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	ucs := NewUseCases(rt.DB, rt.Redis, rt.Config, rt.Log)

	if subscriptionID == "" {
		repaired, err := ucs.All.Execute(cmd.Context())
		if err != nil {
			return fmt.Errorf("reconcile failed: %w", err)
		}
		fmt.Printf("Reconciled all subscriptions, %d inventories repaired\n", repaired)
		return nil
	}

	result, err := ucs.One.Execute(cmd.Context(), subscriptionID)
	if err != nil {
		return fmt.Errorf("reconcile failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
