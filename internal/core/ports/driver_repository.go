package ports

import (
	"context"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver profile.
	// Fails with an ObjectAlreadyExistsError when the user already has a
	// profile or the license number is taken.
	Add(ctx context.Context, aggregate *driver.DriverProfile) error

	// Update persists changes to an existing driver profile.
	Update(ctx context.Context, aggregate *driver.DriverProfile) error

	// Get retrieves a driver profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.DriverProfile, error)

	// GetForUpdate retrieves a driver profile and takes a row lock on it for
	// the duration of the surrounding transaction. The assignment coordinator
	// uses it to serialize concurrent operations touching the same driver.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.DriverProfile, error)

	// GetByUserID retrieves the driver profile belonging to an identity user.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.DriverProfile, error)
}
