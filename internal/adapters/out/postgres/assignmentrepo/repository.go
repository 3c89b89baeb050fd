package assignmentrepo

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new ledger record and attaches the storage-assigned ID to the
// aggregate. The partial unique indexes on active rows are the last line of
// defense against double assignment: a violation means another transaction
// already opened an active record for this driver or vehicle, and comes back
// as a PreconditionFailedError.
func (r *GormAssignmentRepository) Add(ctx context.Context, record *assignment.Assignment) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewPreconditionFailedErrorWithCause(
				"assignment",
				fmt.Sprintf("driver %s / vehicle %s", record.DriverID(), record.VehicleID()),
				assignment.StatusActive.String(),
				err,
			)
		}
		return err
	}

	if err := record.AttachID(dto.ID); err != nil {
		return err
	}

	// Ledger IDs are storage-assigned int64s; track under the driver's UUID.
	r.tracker.TrackAggregate(record.DriverID(), record)
	return nil
}

// Update persists the terminal transition of an existing record.
func (r *GormAssignmentRepository) Update(ctx context.Context, record *assignment.Assignment) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(record.DriverID(), record)
	return nil
}

// Get retrieves a ledger record by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id int64) (*assignment.Assignment, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("id")
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveForDriver retrieves the driver's single ACTIVE record. The partial
// unique index guarantees at most one such row exists.
func (r *GormAssignmentRepository) GetActiveForDriver(
	ctx context.Context,
	driverID kernel.UUID,
) (*assignment.Assignment, error) {
	return r.getActive(ctx, "driver_id", driverID)
}

// GetActiveForVehicle retrieves the vehicle's single ACTIVE record. The partial
// unique index guarantees at most one such row exists.
func (r *GormAssignmentRepository) GetActiveForVehicle(
	ctx context.Context,
	vehicleID kernel.UUID,
) (*assignment.Assignment, error) {
	return r.getActive(ctx, "vehicle_id", vehicleID)
}

func (r *GormAssignmentRepository) getActive(
	ctx context.Context,
	column string,
	id kernel.UUID,
) (*assignment.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where(column+" = ? AND status = ?", id.Bytes(), assignment.StatusActive.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
