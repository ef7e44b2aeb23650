package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/email"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/pubsub"
	"github.com/bdorababu707/goldvault-investment-module/internal/infrastructure/scheduler"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/cli/reconcile"
	"github.com/bdorababu707/goldvault-investment-module/internal/interfaces/cli/runtime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/constants"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/goroutine"
)

func main() {
	// Parse environment from command line or env variable
	env := constants.EnvDevelopment
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	env = runtime.ResolveEnv(env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt, err := runtime.Open(ctx, env, os.Getenv("GOLDVAULT_CONFIG"), true)
	if err != nil {
		fmt.Printf("failed to start worker: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	log := rt.Log
	cfg := rt.Config
	log.Infow("starting goldvault worker", "environment", env)

	dispatcher := email.NewDispatcher(email.NewSMTPMailer(cfg.Email), log)
	consumer := pubsub.NewNotificationConsumer(
		rt.Redis,
		cfg.Notification.QueueKey,
		cfg.Notification.PollTimeoutDuration(),
		dispatcher.Handle,
		log,
	)
	consumerDone := goroutine.SafeGoWithContext(ctx, log, "notification-worker", consumer.Run)

	schedulerManager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}
	if cfg.Reconcile.Enabled {
		ucs := reconcile.NewUseCases(rt.DB, rt.Redis, cfg, log)
		if err := schedulerManager.RegisterReconcileJob(cfg.Reconcile.Schedule, ucs.All); err != nil {
			log.Fatalw("failed to register reconcile job", "error", err)
		}
	}
	schedulerManager.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	cancel()
	if err := schedulerManager.Stop(); err != nil {
		log.Errorw("failed to stop scheduler", "error", err)
	}

	select {
	case <-consumerDone:
	case <-time.After(30 * time.Second):
		log.Warnw("notification worker did not stop in time")
	}

	log.Infow("goldvault worker stopped")
}
