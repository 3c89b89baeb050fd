package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a newly registered vehicle.
	// Fails with an ObjectAlreadyExistsError when the vehicle number is taken.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByNumber retrieves a vehicle by its registration number.
	GetByNumber(ctx context.Context, vehicleNumber string) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle and takes a row lock on it for the
	// duration of the surrounding transaction. The assignment coordinator
	// uses it to serialize concurrent operations touching the same vehicle.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllMaintenanceDue retrieves vehicles whose scheduled maintenance
	// date has passed. Used by the maintenance sweep job.
	GetAllMaintenanceDue(ctx context.Context) ([]*vehicle.Vehicle, error)
}
