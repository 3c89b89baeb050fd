package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand represents a request to add a vehicle to the fleet.
// Number, type and capacity validation is delegated to the Vehicle aggregate.
//
// Example:
//
//	cmd, err := NewRegisterVehicleCommand("FL-0042", vehicle.TypeVan, 1200, details)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewRegisterVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register vehicle: %w", err)
//	}
//	fmt.Printf("Registered vehicle with ID: %s", cmd.VehicleID())
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID     kernel.UUID
	vehicleNumber string
	vehicleType   vehicle.VehicleType
	capacityKg    float64
	details       vehicle.Details

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a vehicle.
// Automatically generates a unique ID for the vehicle.
func NewRegisterVehicleCommand(
	vehicleNumber string,
	vehicleType vehicle.VehicleType,
	capacityKg float64,
	details vehicle.Details,
) (RegisterVehicleCommand, error) {
	command := RegisterVehicleCommand{
		vehicleNumber: vehicleNumber,
		vehicleType:   vehicleType,
		capacityKg:    capacityKg,
		details:       details,
		guard:         guard.NewConstructorGuard(),
	}

	if err := command.setVehicleID(kernel.NewUUID()); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// VehicleID returns the generated vehicle ID.
func (c RegisterVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// VehicleNumber returns the fleet number from the command.
func (c RegisterVehicleCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// VehicleType returns the vehicle type from the command.
func (c RegisterVehicleCommand) VehicleType() vehicle.VehicleType {
	return c.vehicleType
}

// CapacityKg returns the load capacity from the command.
func (c RegisterVehicleCommand) CapacityKg() float64 {
	return c.capacityKg
}

// Details returns the descriptive attributes from the command.
func (c RegisterVehicleCommand) Details() vehicle.Details {
	return c.details
}

func (c *RegisterVehicleCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}
