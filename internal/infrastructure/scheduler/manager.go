// Package scheduler runs periodic maintenance jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/bdorababu707/goldvault-investment-module/internal/shared/biztime"
	"github.com/bdorababu707/goldvault-investment-module/internal/shared/logger"
)

// BatchJob processes one batch and returns the number of items it touched.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager owns the single gocron scheduler of a process.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager evaluates cron expressions in the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterReconcileJob replays every subscription ledger on the given cron
// schedule and rewrites drifted inventory totals.
func (m *SchedulerManager) RegisterReconcileJob(schedule string, job BatchJob) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob(schedule, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			m.runReconcile(ctx, job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("inventory", "reconcile"),
		gocron.WithName("inventory-reconcile"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered inventory reconcile job", "schedule", schedule)
	return nil
}

func (m *SchedulerManager) runReconcile(ctx context.Context, job BatchJob) {
	startTime := biztime.NowUTC()

	repaired, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("inventory reconcile failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Infow("inventory reconcile finished",
		"repaired", repaired,
		"duration", time.Since(startTime),
	)
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")
	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Errorw("failed to shutdown scheduler", "error", err)
		return err
	}

	m.started = false
	m.logger.Infow("scheduler manager stopped")
	return nil
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
