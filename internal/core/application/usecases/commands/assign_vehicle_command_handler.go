package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// AssignVehicleCommandHandler coordinates the pairing of a driver and a
// vehicle. The whole operation runs inside one transaction: both resource
// rows are locked, preconditions are checked against the locked state, the
// ledger record is inserted and both back-references are updated, then
// everything commits together. A failure at any step rolls the whole pairing
// back, so no observer ever sees a half-assigned pair.
//
// Rows are always locked driver first, then vehicle. Every coordinator
// operation takes locks in this order, which rules out deadlocks between
// concurrent assign and unassign calls.
type AssignVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignVehicleCommandHandler creates a handler for assignment operations.
func NewAssignVehicleCommandHandler(uowFactory UoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the new ledger record.
// A driver or vehicle that is not AVAILABLE fails with a
// PreconditionFailedError naming the resource and its state. A context
// deadline surfaces as a TimeoutError after the transaction rolls back.
func (h *AssignVehicleCommandHandler) Handle(
	ctx context.Context,
	cmd AssignVehicleCommand,
) (*assignment.Assignment, error) {
	record, err := h.handle(ctx, cmd)
	if err != nil {
		return nil, wrapTimeout("assign vehicle", err)
	}
	return record, nil
}

func (h *AssignVehicleCommandHandler) handle(
	ctx context.Context,
	cmd AssignVehicleCommand,
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

	profile, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	aggregate, err := vehicleRepo.GetForUpdate(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	if !profile.AvailabilityStatus().IsAssignable() {
		return nil, errs.NewPreconditionFailedError(
			"driver", cmd.DriverID().String(), profile.AvailabilityStatus().String(),
		)
	}
	if !aggregate.Status().IsAssignable() {
		return nil, errs.NewPreconditionFailedError(
			"vehicle", cmd.VehicleID().String(), aggregate.Status().String(),
		)
	}

	// Both rows are locked and AVAILABLE, so no ACTIVE record can exist for
	// either. Re-check the ledger anyway: a hit means the back-references
	// drifted, and failing here beats tripping the unique index on insert.
	if err = h.checkNoActiveRecords(ctx, assignmentRepo, cmd); err != nil {
		return nil, err
	}

	record, err := assignment.NewAssignment(cmd.DriverID(), cmd.VehicleID(), cmd.AssignedBy(), cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err = assignmentRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	if err = profile.MarkAssigned(cmd.VehicleID()); err != nil {
		return nil, err
	}
	if err = aggregate.MarkAssigned(cmd.DriverID()); err != nil {
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

func (h *AssignVehicleCommandHandler) checkNoActiveRecords(
	ctx context.Context,
	assignmentRepo ports.AssignmentRepository,
	cmd AssignVehicleCommand,
) error {
	_, err := assignmentRepo.GetActiveForDriver(ctx, cmd.DriverID())
	if err == nil {
		return errs.NewInvariantViolationError(
			"driver " + cmd.DriverID().String() + " is AVAILABLE but has an ACTIVE ledger record",
		)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	_, err = assignmentRepo.GetActiveForVehicle(ctx, cmd.VehicleID())
	if err == nil {
		return errs.NewInvariantViolationError(
			"vehicle " + cmd.VehicleID().String() + " is AVAILABLE but has an ACTIVE ledger record",
		)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	return nil
}
