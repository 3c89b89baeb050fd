package commands

import (
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrUnassignVehicleCommandIsNotConstructed = errors.New(
	"UnassignVehicleCommand must be created via NewUnassignVehicleCommand constructor",
)

// UnassignVehicleCommand represents a request to end an active assignment.
// The outcome distinguishes a normal completion from a cancellation, and
// vehicleToMaintenance releases the vehicle straight into MAINTENANCE
// instead of back to the available pool. The driver always returns to
// AVAILABLE.
type UnassignVehicleCommand struct { //nolint:recvcheck //using for validation
	assignmentID         int64
	outcome              assignment.Status
	vehicleToMaintenance bool

	guard guard.ConstructorGuard
}

// NewUnassignVehicleCommand creates a command to end the given assignment
// with a terminal outcome (COMPLETED or CANCELLED).
func NewUnassignVehicleCommand(
	assignmentID int64,
	outcome assignment.Status,
	vehicleToMaintenance bool,
) (UnassignVehicleCommand, error) {
	command := UnassignVehicleCommand{
		vehicleToMaintenance: vehicleToMaintenance,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setOutcome(outcome),
	); err != nil {
		return UnassignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUnassignVehicleCommandIsNotConstructed)
}

// AssignmentID returns the ledger record to terminate.
func (c UnassignVehicleCommand) AssignmentID() int64 {
	return c.assignmentID
}

// Outcome returns the terminal status to record.
func (c UnassignVehicleCommand) Outcome() assignment.Status {
	return c.outcome
}

// VehicleToMaintenance reports whether the vehicle is released into
// MAINTENANCE instead of AVAILABLE.
func (c UnassignVehicleCommand) VehicleToMaintenance() bool {
	return c.vehicleToMaintenance
}

func (c *UnassignVehicleCommand) setAssignmentID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignmentId",
			fmt.Errorf("%d is not a valid assignment id", id),
		)
	}

	c.assignmentID = id
	return nil
}

func (c *UnassignVehicleCommand) setOutcome(outcome assignment.Status) error {
	if !outcome.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a terminal assignment outcome", outcome),
		)
	}

	c.outcome = outcome
	return nil
}
