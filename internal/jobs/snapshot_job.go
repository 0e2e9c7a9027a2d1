package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// Snapshotter is the state source for the snapshot job. Implemented by the
// in-memory store.
type Snapshotter interface {
	Snapshot() ports.Snapshot
}

// SnapshotJob periodically saves the full state of the store through the
// snapshot store.
type SnapshotJob struct {
	source   Snapshotter
	sink     ports.SnapshotStore
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotJob creates a snapshot job with the given save interval.
func NewSnapshotJob(
	source Snapshotter,
	sink ports.SnapshotStore,
	interval time.Duration,
	logger *slog.Logger,
) *SnapshotJob {
	return &SnapshotJob{
		source:   source,
		sink:     sink,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.With("component", "snapshot_job"),
	}
}

// Start schedules the periodic save.
func (j *SnapshotJob) Start() error {
	spec := fmt.Sprintf("@every %s", j.interval)
	_, err := j.cron.AddFunc(spec, func() {
		ctx := context.Background()

		snap := j.source.Snapshot()
		if saveErr := j.sink.Save(ctx, snap); saveErr != nil {
			j.logger.ErrorContext(ctx, "Snapshot save failed", "error", saveErr)
			return
		}
		j.logger.DebugContext(ctx, "Snapshot saved",
			"orders", len(snap.Orders), "staff", len(snap.Staff))
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started", "interval", j.interval.String())
	return nil
}

// Stop stops the snapshot job.
func (j *SnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}
