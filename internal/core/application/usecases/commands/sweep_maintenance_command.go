package commands

import (
	"errors"

	"fleet/internal/pkg/guard"
)

var ErrSweepMaintenanceCommandIsNotConstructed = errors.New(
	"SweepMaintenanceCommand must be created via NewSweepMaintenanceCommand constructor",
)

// SweepMaintenanceCommand triggers the periodic maintenance sweep: every
// vehicle whose scheduled maintenance date has passed is moved to
// MAINTENANCE. Vehicles held by an active assignment have the assignment
// cancelled first, through the same coordinator path an operator would use.
//
// Example:
//
//	cmd := NewSweepMaintenanceCommand()
//	handler := NewSweepMaintenanceCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
type SweepMaintenanceCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepMaintenanceCommand creates a new command to trigger the sweep.
// This is a parameterless command run on a schedule.
func NewSweepMaintenanceCommand() SweepMaintenanceCommand {
	return SweepMaintenanceCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SweepMaintenanceCommand) Validate() error {
	return c.guard.Validate(
		ErrSweepMaintenanceCommandIsNotConstructed,
	)
}
