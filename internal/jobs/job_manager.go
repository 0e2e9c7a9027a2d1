package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"restaurant/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotJob *SnapshotJob
}

// NewJobManager creates a job manager wiring the snapshot job to the store
// and the snapshot store.
func NewJobManager(
	source Snapshotter,
	sink ports.SnapshotStore,
	interval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotJob: NewSnapshotJob(source, sink, interval, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotJob.Stop()
}
