// Package jobs provides scheduled background tasks for the fleet service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the resource assignment engine.
//
// # Available Jobs
//
// 1. MaintenanceSweepJob - Runs on a configurable schedule to move overdue
// vehicles into MAINTENANCE, cancelling any active assignment first
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sweepHandler, "0 */10 * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The sweep schedule comes from configuration as a six-field cron expression
// (with seconds). Sweeping more often than the maintenance granularity buys
// nothing: the sweep re-reads vehicle state under lock on every run.
//
// # Error Handling
//
// - The sweep handler skips past per-vehicle failures and reports them joined
// - The job logs sweep errors and relies on the next run to retry
// - A failed job start is returned to the caller so startup can abort
package jobs
