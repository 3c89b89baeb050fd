package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrSetVehicleStatusCommandIsNotConstructed = errors.New(
	"SetVehicleStatusCommand must be created via NewSetVehicleStatusCommand constructor",
)

// SetVehicleStatusCommand represents a registry-facing status change for a
// vehicle: AVAILABLE, MAINTENANCE or OUT_OF_SERVICE. ASSIGNED is not a valid
// target; it is owned by the assignment lifecycle.
type SetVehicleStatusCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	status    vehicle.Status

	guard guard.ConstructorGuard
}

// NewSetVehicleStatusCommand creates a command to change a vehicle's status.
func NewSetVehicleStatusCommand(
	vehicleID kernel.UUID,
	status vehicle.Status,
) (SetVehicleStatusCommand, error) {
	command := SetVehicleStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVehicleID(vehicleID),
		command.setStatus(status),
	); err != nil {
		return SetVehicleStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetVehicleStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetVehicleStatusCommandIsNotConstructed)
}

// VehicleID returns the vehicle to update.
func (c SetVehicleStatusCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Status returns the requested status.
func (c SetVehicleStatusCommand) Status() vehicle.Status {
	return c.status
}

func (c *SetVehicleStatusCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *SetVehicleStatusCommand) setStatus(status vehicle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == vehicle.StatusAssigned {
		return errs.NewValueIsInvalidError("status ASSIGNED is owned by the assignment lifecycle")
	}

	c.status = status
	return nil
}
