package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/migration"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/cli/runtime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
)

var (
	env        string
	configPath string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the embedded goose migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	rt, err := runtime.Open(cmd.Context(), runtime.ResolveEnv(env), configPath, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.Log.Infow("running up migrations", "environment", rt.Env)

	if err := migration.NewGooseStrategy().Migrate(rt.DB); err != nil {
		rt.Log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	rt.Log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	rt, err := runtime.Open(cmd.Context(), runtime.ResolveEnv(env), configPath, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.Log.Infow("running down migrations", "environment", rt.Env, "steps", steps)

	if err := migration.NewGooseStrategy().MigrateDown(rt.DB, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	rt.Log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	rt, err := runtime.Open(cmd.Context(), runtime.ResolveEnv(env), configPath, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	strategy := migration.NewGooseStrategy()
	version, err := strategy.GetVersion(rt.DB)
	if err != nil {
		rt.Log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", rt.Env)
	fmt.Printf("  Current Version: %d\n", version)

	if err := strategy.Status(rt.DB); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}
