package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"taskwizard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultEvictionSchedule runs the eviction at the start of every minute.
const DefaultEvictionSchedule = "0 * * * * *"

// DraftEvictionJob discards wizard sessions nobody has touched for a while.
type DraftEvictionJob struct {
	handler  commands.EvictIdleDraftsCommandHandler
	idleFor  time.Duration
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDraftEvictionJob creates the job. schedule is a six-field cron expression with seconds.
func NewDraftEvictionJob(
	handler commands.EvictIdleDraftsCommandHandler,
	idleFor time.Duration,
	schedule string,
	logger *slog.Logger,
) *DraftEvictionJob {
	return &DraftEvictionJob{
		handler:  handler,
		idleFor:  idleFor,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "draft_eviction_job"),
	}
}

// Start schedules the job. An invalid schedule or idle duration is reported here rather
// than on every run.
func (j *DraftEvictionJob) Start() error {
	if _, err := commands.NewEvictIdleDraftsCommand(j.idleFor); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Draft eviction job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid eviction schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft eviction job started",
		"schedule", j.schedule,
		"idle_for", j.idleFor,
	)
	return nil
}

// RunOnce evicts the sessions idle for longer than the configured duration and returns
// how many were removed.
func (j *DraftEvictionJob) RunOnce(ctx context.Context) (int, error) {
	cmd, err := commands.NewEvictIdleDraftsCommand(j.idleFor)
	if err != nil {
		return 0, err
	}

	evicted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}
	if evicted > 0 {
		j.logger.InfoContext(ctx, "Evicted idle drafts", "count", evicted)
	}
	return evicted, nil
}

// Stop stops scheduling and waits for a running eviction to finish.
func (j *DraftEvictionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Draft eviction job stopped")
}
