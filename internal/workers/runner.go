package workers

import (
	"context"
	"time"

	"bountyboard_backend/internal/logger"
	"bountyboard_backend/internal/metrics"

	"golang.org/x/sync/errgroup"
)

// Job is one pass of a background task; it returns how many rows it touched.
type Job func(ctx context.Context) (int, error)

type Runner struct {
	bounties        *BountyWorker
	cleanup         *NotificationCleanupWorker
	expiryInterval  time.Duration
	cleanupInterval time.Duration
}

func NewRunner(bounties *BountyWorker, cleanup *NotificationCleanupWorker, expiryInterval, cleanupInterval time.Duration) *Runner {
	if expiryInterval <= 0 {
		expiryInterval = time.Hour
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 24 * time.Hour
	}
	return &Runner{
		bounties:        bounties,
		cleanup:         cleanup,
		expiryInterval:  expiryInterval,
		cleanupInterval: cleanupInterval,
	}
}

// Run крутит фоновые задачи до отмены ctx. Ошибка одного прохода только
// логируется, задача продолжает работать по расписанию.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return every(ctx, "bounty_expiry", r.expiryInterval, r.bounties.ExpireOverdue)
	})
	g.Go(func() error {
		return every(ctx, "notification_cleanup", r.cleanupInterval, r.cleanup.CleanupViewed)
	})
	return g.Wait()
}

func every(ctx context.Context, name string, interval time.Duration, job Job) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// первый проход сразу при старте
	runOnce(ctx, name, job)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Worker stopped", "worker", name)
			return nil
		case <-ticker.C:
			runOnce(ctx, name, job)
		}
	}
}

func runOnce(ctx context.Context, name string, job Job) {
	n, err := job(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		metrics.WorkerRuns.WithLabelValues(name, "error").Inc()
		logger.WorkerLog(name, "run", err)
		return
	}
	metrics.WorkerRuns.WithLabelValues(name, "ok").Inc()
	if n > 0 {
		logger.WorkerLog(name, "run", nil, "affected", n)
	}
}
