package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/migration"
	httpRouter "github.com/bdorababu707/goldvault-investment-module/internal/interfaces/http"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/cli/runtime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/utils"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/version"
)

var (
	env                string
	configPath         string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the GoldVault admin API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env = runtime.ResolveEnv(env)

	rt, err := runtime.Open(cmd.Context(), env, configPath, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	log := rt.Log
	cfg := rt.Config

	log.Infow("starting server",
		"environment", env,
		"version", version.String(),
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}
	utils.RegisterValidators()

	if err := handleMigrations(rt); err != nil {
		return fmt.Errorf("migration handling failed: %w", err)
	}

	container, err := httpRouter.NewContainer(cmd.Context(), cfg, rt.DB, rt.Redis, log)
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}
	container.StartBackgroundServices()

	router := httpRouter.NewRouter(container)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serveErr:
		log.Errorw("failed to start server", "error", err)
		return err
	}

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}
	if err := router.Shutdown(ctx); err != nil {
		log.Warnw("background services did not stop cleanly", "error", err)
	}

	log.Infow("server exited gracefully")
	return nil
}

func handleMigrations(rt *runtime.Runtime) error {
	if skipMigrationCheck {
		logger.Info("skipping migration check")
		return nil
	}

	if autoMigrate {
		if rt.Env == constants.EnvProduction {
			rt.Log.Warnw("auto-migration is enabled in production environment - this is not recommended!")
		}

		rt.Log.Infow("running auto-migration")
		if err := migration.NewManager(rt.Env).Migrate(rt.DB); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		rt.Log.Infow("auto-migration completed successfully")
		return nil
	}

	currentVersion, err := migration.NewGooseStrategy().GetVersion(rt.DB)
	if err != nil {
		rt.Log.Warnw("failed to check migration status", "error", err)
		return nil
	}
	rt.Log.Infow("current migration version", "version", currentVersion)
	return nil
}
