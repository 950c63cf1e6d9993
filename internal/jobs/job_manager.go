package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"taskwizard/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	draftEvictionJob *DraftEvictionJob
}

// EvictionConfig controls how often idle drafts are collected and when a draft counts as idle.
type EvictionConfig struct {
	IdleFor  time.Duration
	Schedule string
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	evictIdleDraftsHandler commands.EvictIdleDraftsCommandHandler,
	eviction EvictionConfig,
	logger *slog.Logger,
) *JobManager {
	schedule := eviction.Schedule
	if schedule == "" {
		schedule = DefaultEvictionSchedule
	}

	return &JobManager{
		draftEvictionJob: NewDraftEvictionJob(evictIdleDraftsHandler, eviction.IdleFor, schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.draftEvictionJob.Start(); err != nil {
		return fmt.Errorf("failed to start draft eviction job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.draftEvictionJob.Stop()
}
