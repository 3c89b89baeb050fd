package ports

import (
	"context"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for the assignment
// ledger. The ledger is append-only: records are added once and updated only
// to move from ACTIVE to a terminal status.
type AssignmentRepository interface {
	// Add inserts a new ledger record and attaches the storage-assigned ID to
	// the aggregate. The partial unique indexes on active records make a
	// second ACTIVE row for the same driver or vehicle fail with a
	// PreconditionFailedError even under concurrent writers.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists the terminal transition of an existing record.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves a ledger record by ID.
	Get(ctx context.Context, id int64) (*assignment.Assignment, error)

	// GetActiveForDriver retrieves the driver's single ACTIVE record,
	// or an ObjectNotFoundError when the driver holds no assignment.
	GetActiveForDriver(ctx context.Context, driverID kernel.UUID) (*assignment.Assignment, error)

	// GetActiveForVehicle retrieves the vehicle's single ACTIVE record,
	// or an ObjectNotFoundError when the vehicle is unassigned.
	GetActiveForVehicle(ctx context.Context, vehicleID kernel.UUID) (*assignment.Assignment, error)
}
