package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrAssignVehicleCommandIsNotConstructed = errors.New(
		"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
	)
	ErrAssignedByIsRequired = errors.New("assignedBy is required")
)

// AssignVehicleCommand represents a request to pair a driver with a vehicle.
// Both resources must exist and be AVAILABLE; the pairing opens a new ACTIVE
// ledger record and flips both aggregates in one transaction.
//
// Example:
//
//	cmd, err := NewAssignVehicleCommand(driverID, vehicleID, "dispatcher-1", "night shift")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//
//	handler := NewAssignVehicleCommandHandler(uowFactory)
//	record, err := handler.Handle(ctx, cmd)
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	driverID   kernel.UUID
	vehicleID  kernel.UUID
	assignedBy string
	notes      string

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to pair a driver with a vehicle.
// assignedBy names the operator initiating the pairing; notes are optional.
func NewAssignVehicleCommand(
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	assignedBy string,
	notes string,
) (AssignVehicleCommand, error) {
	command := AssignVehicleCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setVehicleID(vehicleID),
		command.setAssignedBy(assignedBy),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// DriverID returns the driver to assign.
func (c AssignVehicleCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle to assign.
func (c AssignVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// AssignedBy returns the operator initiating the pairing.
func (c AssignVehicleCommand) AssignedBy() string {
	return c.assignedBy
}

// Notes returns the optional free-text notes.
func (c AssignVehicleCommand) Notes() string {
	return c.notes
}

func (c *AssignVehicleCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *AssignVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *AssignVehicleCommand) setAssignedBy(name string) error {
	if name == "" {
		return ErrAssignedByIsRequired
	}

	c.assignedBy = name
	return nil
}
