package assignment

import (
	"errors"
	"fmt"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// Domain errors for assignment operations.
var (
	// ErrAssignedByIsRequired is returned when creating an assignment without the acting operator.
	ErrAssignedByIsRequired = errs.NewValueIsRequiredError("assignedBy")
	// ErrIDAlreadyAttached is returned when binding a storage ID to a record that has one.
	ErrIDAlreadyAttached = errs.NewValueIsInvalidError("id is already attached")
	// ErrAssignmentIsNotConstructed is returned when using an improperly initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment is a ledger record pairing one driver with one vehicle for a
// period of time. Records are append-only: once terminal they are never
// reopened or mutated, and the full history of a driver or vehicle is the
// ordered set of its records.
//
// The identifier is storage-assigned and monotonic. A freshly created record
// has no ID until the repository attaches one on insert.
type Assignment struct {
	id           int64
	driverID     kernel.UUID
	vehicleID    kernel.UUID
	status       Status
	assignedAt   time.Time
	unassignedAt *time.Time
	assignedBy   string
	notes        string

	guard guard.ConstructorGuard
}

// NewAssignment opens an ACTIVE ledger record for the given driver and
// vehicle. assignedBy names the operator who initiated the pairing; notes
// are optional.
func NewAssignment(
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	assignedBy string,
	notes string,
) (*Assignment, error) {
	a := &Assignment{
		status:     StatusActive,
		assignedAt: time.Now().UTC(),
		notes:      notes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setDriverID(driverID),
		a.setVehicleID(vehicleID),
		a.setAssignedBy(assignedBy),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs a ledger record from persistent storage.
func RestoreAssignment(
	id int64,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	status Status,
	assignedAt time.Time,
	unassignedAt *time.Time,
	assignedBy string,
	notes string,
) (*Assignment, error) {
	a := &Assignment{
		status:       status,
		assignedAt:   assignedAt,
		unassignedAt: unassignedAt,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setDriverID(driverID),
		a.setVehicleID(vehicleID),
		a.setAssignedBy(assignedBy),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := a.AttachID(id); err != nil {
		return nil, err
	}

	return a, a.checkTimeline()
}

// AttachID binds the storage-assigned identifier to a freshly inserted
// record. It can be called exactly once with a positive ID.
func (a *Assignment) AttachID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%d is not a valid assignment id", id),
		)
	}
	if a.id != 0 {
		return ErrIDAlreadyAttached
	}

	a.id = id
	return nil
}

// IsEqual compares two assignments by identity. Records without an attached
// ID are never equal.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id != 0 && a.id == other.id
}

// Validate checks constructor usage and the status/timeline invariant.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	if err := a.guard.Validate(ErrAssignmentIsNotConstructed); err != nil {
		return err
	}
	return a.checkTimeline()
}

// ID returns the storage-assigned identifier, zero before the first insert.
func (a *Assignment) ID() int64 {
	return a.id
}

// DriverID returns the assigned driver.
func (a *Assignment) DriverID() kernel.UUID {
	return a.driverID
}

// VehicleID returns the assigned vehicle.
func (a *Assignment) VehicleID() kernel.UUID {
	return a.vehicleID
}

// Status returns the record's lifecycle status.
func (a *Assignment) Status() Status {
	return a.status
}

// IsActive reports whether the record currently binds its driver and vehicle.
func (a *Assignment) IsActive() bool {
	return a.status == StatusActive
}

// AssignedAt returns when the pairing was opened.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// UnassignedAt returns when the pairing ended, nil while ACTIVE.
func (a *Assignment) UnassignedAt() *time.Time {
	return a.unassignedAt
}

// AssignedBy returns the operator who initiated the pairing.
func (a *Assignment) AssignedBy() string {
	return a.assignedBy
}

// Notes returns the optional free-text notes.
func (a *Assignment) Notes() string {
	return a.notes
}

// Terminate closes an ACTIVE record with the given terminal outcome and
// stamps the end of the pairing. Terminating a record that is already
// terminal fails with an InvalidStateError.
func (a *Assignment) Terminate(outcome Status) error {
	if !outcome.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a terminal assignment outcome", outcome),
		)
	}
	if a.status != StatusActive {
		return errs.NewInvalidStateError(
			fmt.Sprintf("assignment %d", a.id), a.status.String(),
		)
	}

	now := time.Now().UTC()
	a.status = outcome
	a.unassignedAt = &now
	return nil
}

// checkTimeline enforces: unassignedAt is set if and only if the record is terminal.
func (a *Assignment) checkTimeline() error {
	if a.status.IsTerminal() != (a.unassignedAt != nil) {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("assignment %d is %s but unassignedAt disagrees", a.id, a.status),
		)
	}
	return nil
}

func (a *Assignment) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.driverID = id
	return nil
}

func (a *Assignment) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.vehicleID = id
	return nil
}

func (a *Assignment) setAssignedBy(name string) error {
	if name == "" {
		return ErrAssignedByIsRequired
	}

	a.assignedBy = name
	return nil
}
