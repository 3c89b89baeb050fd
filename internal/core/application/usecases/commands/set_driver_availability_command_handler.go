package commands

import (
	"context"
)

// SetDriverAvailabilityCommandHandler applies registry-facing availability
// changes. Drivers holding an active assignment cannot change availability
// here; the assignment has to end first.
type SetDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetDriverAvailabilityCommandHandler creates a handler for availability changes.
func NewSetDriverAvailabilityCommandHandler(uowFactory DriverUoWFactory) SetDriverAvailabilityCommandHandler {
	return SetDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change.
// The driver row is locked for the duration of the transaction so the change
// cannot interleave with an assignment touching the same driver. A BUSY
// driver fails with the aggregate's InvariantViolationError: the transition
// table reserves anything touching BUSY for the coordinator.
func (h *SetDriverAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetDriverAvailabilityCommand) error {
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

	driverRepo := uow.DriverRepository()
	profile, err := driverRepo.GetForUpdate(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if err = profile.SetAvailability(cmd.Status()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
