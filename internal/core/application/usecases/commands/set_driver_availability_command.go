package commands

import (
	"errors"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrSetDriverAvailabilityCommandIsNotConstructed = errors.New(
	"SetDriverAvailabilityCommand must be created via NewSetDriverAvailabilityCommand constructor",
)

// SetDriverAvailabilityCommand represents a registry-facing availability
// change for a driver: AVAILABLE, OFF_DUTY or ON_LEAVE. BUSY is not a valid
// target; it is owned by the assignment lifecycle.
type SetDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	status   driver.AvailabilityStatus

	guard guard.ConstructorGuard
}

// NewSetDriverAvailabilityCommand creates a command to change a driver's availability.
func NewSetDriverAvailabilityCommand(
	driverID kernel.UUID,
	status driver.AvailabilityStatus,
) (SetDriverAvailabilityCommand, error) {
	command := SetDriverAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setStatus(status),
	); err != nil {
		return SetDriverAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver to update.
func (c SetDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Status returns the requested availability status.
func (c SetDriverAvailabilityCommand) Status() driver.AvailabilityStatus {
	return c.status
}

func (c *SetDriverAvailabilityCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *SetDriverAvailabilityCommand) setStatus(status driver.AvailabilityStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == driver.StatusBusy {
		return errs.NewValueIsInvalidError("availabilityStatus BUSY is owned by the assignment lifecycle")
	}

	c.status = status
	return nil
}
