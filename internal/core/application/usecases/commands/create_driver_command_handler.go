package commands

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"
)

// CreateDriverCommandHandler handles the business logic for driver
// registration. Verifies the user against the identity service, then creates
// and persists the profile.
//
// Example:
//
//	handler := NewCreateDriverCommandHandler(uowFactory, identity)
//	cmd, _ := NewCreateDriverCommand(userID, "DL-12345", "B", expiry, "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("driver registration failed: %w", err)
//	}
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	identity   ports.IdentityClient
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(
	uowFactory DriverUoWFactory,
	identity ports.IdentityClient,
) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
		identity:   identity,
	}
}

// Handle processes the driver creation command.
// The identity lookup happens before the transaction opens: an unknown user
// surfaces as an ObjectNotFoundError, a deactivated one as a
// PreconditionFailedError. Uniqueness of the user and license number is
// enforced by the repository on Add.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := h.identity.GetUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if !user.Active {
		return errs.NewPreconditionFailedError(
			"user", cmd.UserID().String(), "INACTIVE",
		)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	profile, err := driver.NewDriverProfile(
		cmd.DriverID(),
		cmd.UserID(),
		cmd.LicenseNumber(),
		cmd.LicenseClass(),
		cmd.LicenseExpiry(),
		cmd.EmergencyContact(),
	)
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, profile); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
