package commands

import (
	"context"
	"fmt"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"
)

// UnassignVehicleCommandHandler coordinates the termination of an active
// assignment. Like assignment, the whole release runs inside one
// transaction with both resource rows locked in driver-then-vehicle order:
// the ledger record moves to its terminal status and both back-references
// clear together.
type UnassignVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnassignVehicleCommandHandler creates a handler for unassignment operations.
func NewUnassignVehicleCommandHandler(uowFactory UoWFactory) UnassignVehicleCommandHandler {
	return UnassignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassignment command and returns the terminated
// ledger record. A record that is already terminal fails with an
// InvalidStateError. A context deadline surfaces as a TimeoutError after
// the transaction rolls back.
func (h *UnassignVehicleCommandHandler) Handle(
	ctx context.Context,
	cmd UnassignVehicleCommand,
) (*assignment.Assignment, error) {
	record, err := h.handle(ctx, cmd)
	if err != nil {
		return nil, wrapTimeout("unassign vehicle", err)
	}
	return record, nil
}

func (h *UnassignVehicleCommandHandler) handle(
	ctx context.Context,
	cmd UnassignVehicleCommand,
) (*assignment.Assignment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()
	assignmentRepo := uow.AssignmentRepository()

	record, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	if !record.IsActive() {
		return nil, errs.NewInvalidStateError(
			fmt.Sprintf("assignment %d", record.ID()), record.Status().String(),
		)
	}

	profile, err := driverRepo.GetForUpdate(ctx, record.DriverID())
	if err != nil {
		return nil, err
	}

	aggregate, err := vehicleRepo.GetForUpdate(ctx, record.VehicleID())
	if err != nil {
		return nil, err
	}

	// The first read ran before the resource rows were locked, so a
	// concurrent unassign may have terminated the record in between.
	// Re-read under the locks and re-check before touching anything.
	record, err = assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return nil, err
	}

	if !record.IsActive() {
		return nil, errs.NewInvalidStateError(
			fmt.Sprintf("assignment %d", record.ID()), record.Status().String(),
		)
	}

	if err = record.Terminate(cmd.Outcome()); err != nil {
		return nil, err
	}

	if err = profile.MarkUnassigned(); err != nil {
		return nil, err
	}

	landing := vehicle.StatusAvailable
	if cmd.VehicleToMaintenance() {
		landing = vehicle.StatusMaintenance
	}
	if err = aggregate.MarkUnassigned(landing); err != nil {
		return nil, err
	}

	if err = assignmentRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	if err = driverRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
