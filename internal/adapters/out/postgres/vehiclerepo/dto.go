// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
// This package implements the repository pattern for the vehicle domain aggregate, handling
// the conversion between domain entities and database representations.
package vehiclerepo

import (
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
// The vehicle_number column carries a unique index: fleet numbers are unique
// across all vehicles regardless of status.
type VehicleDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleNumber    string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	VehicleType      string     `gorm:"type:varchar(16);not null"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	CapacityKg       float64    `gorm:"type:numeric;not null"`
	AssignedDriverID *uuid.UUID `gorm:"type:uuid;index"`
	Make             string     `gorm:"type:varchar(64)"`
	Model            string     `gorm:"type:varchar(64)"`
	Year             int        `gorm:"type:int"`
	LastMaintenance  *time.Time `gorm:"type:timestamptz"`
	NextMaintenance  *time.Time `gorm:"type:timestamptz;index"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles" instead of "vehicle_dtos".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	var assignedDriverID *uuid.UUID
	if aggregate.AssignedDriverID() != nil {
		raw := aggregate.AssignedDriverID().Bytes()
		assignedDriverID = &raw
	}

	details := aggregate.Details()

	return VehicleDTO{
		ID:               aggregate.ID().Bytes(),
		VehicleNumber:    aggregate.VehicleNumber(),
		VehicleType:      aggregate.VehicleType().String(),
		Status:           aggregate.Status().String(),
		CapacityKg:       aggregate.CapacityKg(),
		AssignedDriverID: assignedDriverID,
		Make:             details.Make,
		Model:            details.Model,
		Year:             details.Year,
		LastMaintenance:  details.LastMaintenance,
		NextMaintenance:  details.NextMaintenance,
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
// Reconstructs the aggregate with its persisted state using RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := vehicle.TypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignedDriverID *kernel.UUID
	if dto.AssignedDriverID != nil {
		driverID, dErr := kernel.UUIDFromBytes((*dto.AssignedDriverID)[:])
		if dErr != nil {
			return nil, dErr
		}
		assignedDriverID = &driverID
	}

	return vehicle.RestoreVehicle(
		id,
		dto.VehicleNumber,
		vehicleType,
		dto.CapacityKg,
		status,
		assignedDriverID,
		vehicle.Details{
			Make:            dto.Make,
			Model:           dto.Model,
			Year:            dto.Year,
			LastMaintenance: dto.LastMaintenance,
			NextMaintenance: dto.NextMaintenance,
		},
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
