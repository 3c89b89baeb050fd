package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
)

// SweepMaintenanceCommandHandler orchestrates the periodic maintenance
// sweep. It reads the overdue vehicles in one short transaction, then acts
// on each vehicle through the regular command handlers, one transaction per
// vehicle, so a failure on one vehicle never blocks the rest of the sweep.
type SweepMaintenanceCommandHandler struct {
	uowFactory UoWFactory
	setStatus  SetVehicleStatusCommandHandler
	unassign   UnassignVehicleCommandHandler
}

// NewSweepMaintenanceCommandHandler creates a handler for the maintenance sweep.
// The setStatus and unassign handlers perform the per-vehicle work.
func NewSweepMaintenanceCommandHandler(
	uowFactory UoWFactory,
	setStatus SetVehicleStatusCommandHandler,
	unassign UnassignVehicleCommandHandler,
) SweepMaintenanceCommandHandler {
	return SweepMaintenanceCommandHandler{
		uowFactory: uowFactory,
		setStatus:  setStatus,
		unassign:   unassign,
	}
}

// overdueVehicle captures the state a sweep decision needs, read up front so
// the per-vehicle transactions only re-verify it under lock.
type overdueVehicle struct {
	vehicleID          kernel.UUID
	status             vehicle.Status
	activeAssignmentID int64
}

// Handle processes the maintenance sweep command.
// AVAILABLE vehicles move straight to MAINTENANCE; ASSIGNED vehicles have
// their assignment cancelled with the vehicle released into MAINTENANCE.
// Vehicles already in MAINTENANCE or OUT_OF_SERVICE are left alone.
// Per-vehicle failures are joined and returned after the sweep finishes.
func (h *SweepMaintenanceCommandHandler) Handle(ctx context.Context, cmd SweepMaintenanceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	overdue, err := h.collectOverdue(ctx)
	if err != nil {
		return err
	}

	var sweepErrs []error
	for _, item := range overdue {
		if err := h.sweepVehicle(ctx, item); err != nil {
			sweepErrs = append(sweepErrs, err)
		}
	}

	return errors.Join(sweepErrs...)
}

func (h *SweepMaintenanceCommandHandler) collectOverdue(ctx context.Context) ([]overdueVehicle, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicles, err := uow.VehicleRepository().GetAllMaintenanceDue(ctx)
	if err != nil {
		return nil, err
	}

	overdue := make([]overdueVehicle, 0, len(vehicles))
	for _, aggregate := range vehicles {
		item := overdueVehicle{
			vehicleID: aggregate.ID(),
			status:    aggregate.Status(),
		}
		if aggregate.Status() == vehicle.StatusAssigned {
			record, err := uow.AssignmentRepository().GetActiveForVehicle(ctx, aggregate.ID())
			if err != nil {
				return nil, err
			}
			item.activeAssignmentID = record.ID()
		}
		overdue = append(overdue, item)
	}

	return overdue, nil
}

func (h *SweepMaintenanceCommandHandler) sweepVehicle(ctx context.Context, item overdueVehicle) error {
	switch item.status {
	case vehicle.StatusAvailable:
		cmd, err := NewSetVehicleStatusCommand(item.vehicleID, vehicle.StatusMaintenance)
		if err != nil {
			return err
		}
		return h.setStatus.Handle(ctx, cmd)

	case vehicle.StatusAssigned:
		cmd, err := NewUnassignVehicleCommand(item.activeAssignmentID, assignment.StatusCancelled, true)
		if err != nil {
			return err
		}
		_, err = h.unassign.Handle(ctx, cmd)
		return err

	default:
		// Already in MAINTENANCE or OUT_OF_SERVICE, nothing to do.
		return nil
	}
}
