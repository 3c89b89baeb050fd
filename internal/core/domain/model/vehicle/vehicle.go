package vehicle

import (
	"errors"
	"fmt"
	"math"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleNumberIsRequired is returned when registering a vehicle without a fleet number.
	ErrVehicleNumberIsRequired = errs.NewValueIsRequiredError("vehicleNumber")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Details carries the descriptive and maintenance attributes of a vehicle.
// All fields are optional; the zero value means nothing is recorded.
type Details struct {
	Make            string
	Model           string
	Year            int
	LastMaintenance *time.Time
	NextMaintenance *time.Time
}

// Vehicle is the aggregate root for a fleet vehicle. It owns the vehicle's
// registration data and status lifecycle, and mirrors the currently assigned
// driver as a back-reference maintained exclusively by the assignment
// coordinator.
//
// Invariants:
//   - status = ASSIGNED if and only if assignedDriverID is set
//   - direct status changes never touch ASSIGNED; MarkAssigned and
//     MarkUnassigned are the only entry and exit points, and they are called
//     by the coordinator inside its transaction
//   - capacity is strictly positive
type Vehicle struct {
	id               kernel.UUID
	vehicleNumber    string
	vehicleType      VehicleType
	capacityKg       float64
	status           Status
	assignedDriverID *kernel.UUID
	details          Details
	createdAt        time.Time
	updatedAt        time.Time

	guard guard.ConstructorGuard
}

// NewVehicle registers a vehicle in the fleet. This is the only way to create
// a valid Vehicle; the new vehicle starts AVAILABLE with no assigned driver.
func NewVehicle(
	id kernel.UUID,
	vehicleNumber string,
	vehicleType VehicleType,
	capacityKg float64,
	details Details,
) (*Vehicle, error) {
	now := time.Now().UTC()
	v := &Vehicle{
		status:    StatusAvailable,
		details:   details,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setVehicleNumber(vehicleNumber),
		v.setVehicleType(vehicleType),
		v.setCapacity(capacityKg),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage, including
// its status and driver back-reference.
func RestoreVehicle(
	id kernel.UUID,
	vehicleNumber string,
	vehicleType VehicleType,
	capacityKg float64,
	status Status,
	assignedDriverID *kernel.UUID,
	details Details,
	createdAt time.Time,
	updatedAt time.Time,
) (*Vehicle, error) {
	v := &Vehicle{
		status:           status,
		assignedDriverID: assignedDriverID,
		details:          details,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setVehicleNumber(vehicleNumber),
		v.setVehicleType(vehicleType),
		v.setCapacity(capacityKg),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return v, v.checkMirror()
}

// IsEqual compares two vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// Validate checks constructor usage and the ASSIGNED/back-reference mirror
// invariant. Repositories call this before every write.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	if err := v.guard.Validate(ErrVehicleIsNotConstructed); err != nil {
		return err
	}
	return v.checkMirror()
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// VehicleNumber returns the fleet registration number, unique across vehicles.
func (v *Vehicle) VehicleNumber() string {
	return v.vehicleNumber
}

// VehicleType returns the vehicle's body kind.
func (v *Vehicle) VehicleType() VehicleType {
	return v.vehicleType
}

// CapacityKg returns the load capacity in kilograms.
func (v *Vehicle) CapacityKg() float64 {
	return v.capacityKg
}

// Status returns the vehicle's current lifecycle status.
func (v *Vehicle) Status() Status {
	return v.status
}

// AssignedDriverID returns the driver back-reference, or nil when the vehicle
// is not held by an active assignment. The value always matches the single
// ACTIVE ledger row for this vehicle.
func (v *Vehicle) AssignedDriverID() *kernel.UUID {
	return v.assignedDriverID
}

// Details returns the descriptive and maintenance attributes.
func (v *Vehicle) Details() Details {
	return v.details
}

// CreatedAt returns the registration timestamp.
func (v *Vehicle) CreatedAt() time.Time {
	return v.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (v *Vehicle) UpdatedAt() time.Time {
	return v.updatedAt
}

// MaintenanceDueBy reports whether the vehicle has a scheduled maintenance
// date on or before the given instant. Used by the maintenance sweep job.
func (v *Vehicle) MaintenanceDueBy(at time.Time) bool {
	return v.details.NextMaintenance != nil && !v.details.NextMaintenance.After(at)
}

// SetStatus performs a registry-facing status change between AVAILABLE,
// MAINTENANCE and OUT_OF_SERVICE. Transitions touching ASSIGNED, or any
// change while the vehicle is held by an active assignment, fail with an
// InvariantViolationError: those moves belong to the assignment coordinator.
func (v *Vehicle) SetStatus(status Status) error {
	if err := v.status.ValidateDirectTransition(status); err != nil {
		return err
	}

	if v.assignedDriverID != nil {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("vehicle %s is held by an active assignment and cannot change status directly", v.id),
		)
	}

	v.status = status
	v.touch()
	return nil
}

// RecordMaintenance updates the maintenance schedule after a completed
// service: the last-maintenance date is set and the next one rescheduled
// (or cleared when nil).
func (v *Vehicle) RecordMaintenance(performedAt time.Time, next *time.Time) {
	at := performedAt
	v.details.LastMaintenance = &at
	v.details.NextMaintenance = next
	v.touch()
}

// MarkAssigned is the coordinator-only entry into ASSIGNED: it sets the
// driver back-reference and flips the status in one step so the mirror
// invariant holds at every observable point. The vehicle must be AVAILABLE
// with no back-reference.
func (v *Vehicle) MarkAssigned(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if v.assignedDriverID != nil {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("vehicle %s is already held by an active assignment", v.id),
		)
	}
	if !v.status.IsAssignable() {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("vehicle %s is %s and cannot be marked assigned", v.id, v.status),
		)
	}

	v.status = StatusAssigned
	v.assignedDriverID = &driverID
	v.touch()
	return nil
}

// MarkUnassigned is the coordinator-only exit from ASSIGNED, clearing the
// back-reference and moving the vehicle to next. Only AVAILABLE and
// MAINTENANCE are valid landing states: a release either returns the vehicle
// to the pool or sends it straight to the shop.
func (v *Vehicle) MarkUnassigned(next Status) error {
	if next != StatusAvailable && next != StatusMaintenance {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid landing status for an unassigned vehicle", next),
		)
	}
	if v.status != StatusAssigned || v.assignedDriverID == nil {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("vehicle %s is %s and is not held by an active assignment", v.id, v.status),
		)
	}

	v.status = next
	v.assignedDriverID = nil
	v.touch()
	return nil
}

// checkMirror enforces: status is ASSIGNED if and only if a driver back-reference exists.
func (v *Vehicle) checkMirror() error {
	assigned := v.status == StatusAssigned
	if assigned != (v.assignedDriverID != nil) {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("vehicle %s is %s but assignedDriverId mirror disagrees", v.id, v.status),
		)
	}
	return nil
}

func (v *Vehicle) touch() {
	v.updatedAt = time.Now().UTC()
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	v.id = id
	return nil
}

func (v *Vehicle) setVehicleNumber(number string) error {
	if number == "" {
		return ErrVehicleNumberIsRequired
	}

	v.vehicleNumber = number
	return nil
}

func (v *Vehicle) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setCapacity(capacityKg float64) error {
	if capacityKg <= 0 {
		return errs.NewValueIsOutOfRangeError("capacityKg", capacityKg, 0, math.MaxFloat64)
	}

	v.capacityKg = capacityKg
	return nil
}
