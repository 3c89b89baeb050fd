package commands

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to register a driver profile for
// an identity-service user. License validation is delegated to the
// DriverProfile aggregate; the command only requires a parseable user ID.
//
// Example:
//
//	cmd, err := NewCreateDriverCommand(userID, "DL-12345", "CE", expiry, "+15550001111")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewCreateDriverCommandHandler(uowFactory, identity)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create driver: %w", err)
//	}
//	fmt.Printf("Created driver with ID: %s", cmd.DriverID())
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID         kernel.UUID
	userID           kernel.UUID
	licenseNumber    string
	licenseClass     string
	licenseExpiry    time.Time
	emergencyContact string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver profile.
// Automatically generates a unique ID for the driver.
func NewCreateDriverCommand(
	userID kernel.UUID,
	licenseNumber string,
	licenseClass string,
	licenseExpiry time.Time,
	emergencyContact string,
) (CreateDriverCommand, error) {
	command := CreateDriverCommand{
		licenseNumber:    licenseNumber,
		licenseClass:     licenseClass,
		licenseExpiry:    licenseExpiry,
		emergencyContact: emergencyContact,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setUserID(userID),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the generated driver ID.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// UserID returns the identity-service user the profile is created for.
func (c CreateDriverCommand) UserID() kernel.UUID {
	return c.userID
}

// LicenseNumber returns the license number from the command.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// LicenseClass returns the license class from the command.
func (c CreateDriverCommand) LicenseClass() string {
	return c.licenseClass
}

// LicenseExpiry returns the license expiry date from the command.
func (c CreateDriverCommand) LicenseExpiry() time.Time {
	return c.licenseExpiry
}

// EmergencyContact returns the optional emergency contact from the command.
func (c CreateDriverCommand) EmergencyContact() string {
	return c.emergencyContact
}

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
