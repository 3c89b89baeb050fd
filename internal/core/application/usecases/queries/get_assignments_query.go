package queries

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrGetAssignmentsQueryIsNotConstructed = errors.New(
	"GetAssignmentsQuery must be created via NewGetAssignmentsQuery constructor",
)

// GetAssignmentsQuery retrieves assignment ledger records, newest first.
// Filters narrow the history: activeOnly keeps ACTIVE records, driverID and
// vehicleID restrict to one resource's history.
//
// Example:
//
//	query, _ := NewGetAssignmentsQuery(true, nil, nil)        // all active pairings
//	query, _ := NewGetAssignmentsQuery(false, &driverID, nil) // one driver's history
type GetAssignmentsQuery struct { //nolint:recvcheck //using for validation
	activeOnly bool
	driverID   *kernel.UUID
	vehicleID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignmentsQuery creates a ledger listing query. Nil IDs mean no
// resource filter.
func NewGetAssignmentsQuery(
	activeOnly bool,
	driverID *kernel.UUID,
	vehicleID *kernel.UUID,
) (GetAssignmentsQuery, error) {
	query := GetAssignmentsQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setDriverID(driverID),
		query.setVehicleID(vehicleID),
	); err != nil {
		return GetAssignmentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignmentsQueryIsNotConstructed)
}

// ActiveOnly reports whether only ACTIVE records are returned.
func (q GetAssignmentsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// DriverID returns the driver filter, nil when unfiltered.
func (q GetAssignmentsQuery) DriverID() *kernel.UUID {
	return q.driverID
}

// VehicleID returns the vehicle filter, nil when unfiltered.
func (q GetAssignmentsQuery) VehicleID() *kernel.UUID {
	return q.vehicleID
}

func (q *GetAssignmentsQuery) setDriverID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	q.driverID = id
	return nil
}

func (q *GetAssignmentsQuery) setVehicleID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	q.vehicleID = id
	return nil
}

// GetAssignmentsQueryResponse represents a ledger record in the read model.
type GetAssignmentsQueryResponse struct {
	ID           int64
	DriverID     kernel.UUID
	VehicleID    kernel.UUID
	Status       string
	AssignedAt   time.Time
	UnassignedAt *time.Time
	AssignedBy   string
	Notes        string
}
