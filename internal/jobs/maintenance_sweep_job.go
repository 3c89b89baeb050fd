package jobs

import (
	"context"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MaintenanceSweepJob periodically forces overdue vehicles into MAINTENANCE.
// Vehicles holding an active assignment have it cancelled first, so a sweep
// never leaves a driver paired with a parked vehicle.
type MaintenanceSweepJob struct {
	handler  commands.SweepMaintenanceCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMaintenanceSweepJob creates the sweep job. The schedule is a six-field
// cron expression with seconds, e.g. "0 */10 * * * *" for every ten minutes.
func NewMaintenanceSweepJob(
	handler commands.SweepMaintenanceCommandHandler,
	schedule string,
	logger *slog.Logger,
) *MaintenanceSweepJob {
	return &MaintenanceSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "maintenance_sweep_job"),
	}
}

// Start begins the sweep on the configured schedule.
func (j *MaintenanceSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSweepMaintenanceCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A sweep error means one or more vehicles could not be parked;
			// the handler already skipped past them, so log and wait for the
			// next run.
			j.logger.ErrorContext(ctx, "Maintenance sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Maintenance sweep job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep job.
func (j *MaintenanceSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Maintenance sweep job stopped")
}
