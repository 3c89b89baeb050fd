// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrGetAllDriversQueryIsNotConstructed = errors.New(
	"GetAllDriversQuery must be created via NewGetAllDriversQuery constructor",
)

// GetAllDriversQuery retrieves driver profiles, optionally filtered by
// availability status and by a license number search term.
//
// Example:
//
//	status := driver.StatusAvailable
//	query, _ := NewGetAllDriversQuery(&status, "")
//	drivers, err := NewGetAllDriversQueryHandler(db).Handle(ctx, query)
type GetAllDriversQuery struct { //nolint:recvcheck //using for validation
	status        *driver.AvailabilityStatus
	licenseSearch string

	guard guard.ConstructorGuard
}

// NewGetAllDriversQuery creates a driver listing query. A nil status means
// no status filter; an empty licenseSearch means no license filter.
func NewGetAllDriversQuery(
	status *driver.AvailabilityStatus,
	licenseSearch string,
) (GetAllDriversQuery, error) {
	query := GetAllDriversQuery{
		licenseSearch: licenseSearch,
		guard:         guard.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return GetAllDriversQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDriversQueryIsNotConstructed)
}

// Status returns the status filter, nil when unfiltered.
func (q GetAllDriversQuery) Status() *driver.AvailabilityStatus {
	return q.status
}

// LicenseSearch returns the license number search term, empty when unfiltered.
func (q GetAllDriversQuery) LicenseSearch() string {
	return q.licenseSearch
}

func (q *GetAllDriversQuery) setStatus(status *driver.AvailabilityStatus) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

// GetAllDriversQueryResponse represents a driver profile in the read model.
type GetAllDriversQueryResponse struct {
	ID                 kernel.UUID
	UserID             kernel.UUID
	LicenseNumber      string
	LicenseClass       string
	LicenseExpiry      time.Time
	AvailabilityStatus string
	AssignedVehicleID  *kernel.UUID
	EmergencyContact   string
}
