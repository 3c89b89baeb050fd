package queries

import (
	"errors"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/guard"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery retrieves vehicles, optionally filtered by status and
// vehicle type.
//
// Example:
//
//	status := vehicle.StatusAvailable
//	query, _ := NewGetAllVehiclesQuery(&status, nil)
//	vehicles, err := NewGetAllVehiclesQueryHandler(db).Handle(ctx, query)
type GetAllVehiclesQuery struct { //nolint:recvcheck //using for validation
	status      *vehicle.Status
	vehicleType *vehicle.VehicleType

	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a vehicle listing query. Nil filters mean
// no filtering on that attribute.
func NewGetAllVehiclesQuery(
	status *vehicle.Status,
	vehicleType *vehicle.VehicleType,
) (GetAllVehiclesQuery, error) {
	query := GetAllVehiclesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setStatus(status),
		query.setVehicleType(vehicleType),
	); err != nil {
		return GetAllVehiclesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// Status returns the status filter, nil when unfiltered.
func (q GetAllVehiclesQuery) Status() *vehicle.Status {
	return q.status
}

// VehicleType returns the type filter, nil when unfiltered.
func (q GetAllVehiclesQuery) VehicleType() *vehicle.VehicleType {
	return q.vehicleType
}

func (q *GetAllVehiclesQuery) setStatus(status *vehicle.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.status = status
	return nil
}

func (q *GetAllVehiclesQuery) setVehicleType(vehicleType *vehicle.VehicleType) error {
	if vehicleType != nil {
		if err := vehicleType.Validate(); err != nil {
			return err
		}
	}

	q.vehicleType = vehicleType
	return nil
}

// GetAllVehiclesQueryResponse represents a vehicle in the read model.
type GetAllVehiclesQueryResponse struct {
	ID               kernel.UUID
	VehicleNumber    string
	VehicleType      string
	Status           string
	CapacityKg       float64
	AssignedDriverID *kernel.UUID
	Make             string
	Model            string
	Year             int
	LastMaintenance  *time.Time
	NextMaintenance  *time.Time
}
