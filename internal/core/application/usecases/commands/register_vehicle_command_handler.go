package commands

import (
	"context"

	"fleet/internal/core/domain/model/vehicle"
)

// RegisterVehicleCommandHandler handles the business logic for vehicle
// registration. Creates and persists new vehicle aggregates.
//
// Example:
//
//	handler := NewRegisterVehicleCommandHandler(uowFactory)
//	cmd, _ := NewRegisterVehicleCommand("FL-0042", vehicle.TypeVan, 1200, details)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("vehicle registration failed: %w", err)
//	}
type RegisterVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRegisterVehicleCommandHandler creates a handler for vehicle registration.
func NewRegisterVehicleCommandHandler(uowFactory VehicleUoWFactory) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
// Creates a new vehicle aggregate and persists it within a transaction.
// Uniqueness of the vehicle number is enforced by the repository on Add.
func (h *RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	aggregate, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.VehicleNumber(),
		cmd.VehicleType(),
		cmd.CapacityKg(),
		cmd.Details(),
	)
	if err != nil {
		return err
	}

	if err = vehicleRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
