package commands

import (
	"context"
)

// SetVehicleStatusCommandHandler applies registry-facing status changes.
// Vehicles held by an active assignment cannot change status here; cancelling
// the assignment through the coordinator releases them, optionally straight
// into MAINTENANCE.
type SetVehicleStatusCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewSetVehicleStatusCommandHandler creates a handler for vehicle status changes.
func NewSetVehicleStatusCommandHandler(uowFactory VehicleUoWFactory) SetVehicleStatusCommandHandler {
	return SetVehicleStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change.
// The vehicle row is locked for the duration of the transaction so the change
// cannot interleave with an assignment touching the same vehicle. An ASSIGNED
// vehicle fails with the aggregate's InvariantViolationError: the transition
// table reserves anything touching ASSIGNED for the coordinator.
func (h *SetVehicleStatusCommandHandler) Handle(ctx context.Context, cmd SetVehicleStatusCommand) error {
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
	aggregate, err := vehicleRepo.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = aggregate.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
