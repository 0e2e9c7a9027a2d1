// Package jobs provides scheduled background tasks for the restaurant
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SnapshotJob - periodically persists the full state of the in-memory
// order store and staff registry through the snapshot store, so a restart
// can resume from the last saved state.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(store, snapshots, interval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed snapshot save is logged and retried on the next tick; the live
// in-memory state is unaffected.
package jobs
