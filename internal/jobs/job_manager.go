package jobs

import (
	"fmt"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	maintenanceSweepJob *MaintenanceSweepJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sweepHandler commands.SweepMaintenanceCommandHandler,
	sweepSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		maintenanceSweepJob: NewMaintenanceSweepJob(sweepHandler, sweepSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.maintenanceSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start maintenance sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.maintenanceSweepJob.Stop()
}
