// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The user_id and license_number columns carry unique indexes: a user has at
// most one profile and a license number belongs to at most one driver.
type DriverDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	LicenseNumber      string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	LicenseClass       string     `gorm:"type:varchar(2);not null"`
	LicenseExpiry      time.Time  `gorm:"type:date;not null"`
	AvailabilityStatus string     `gorm:"type:varchar(16);not null;index"`
	AssignedVehicleID  *uuid.UUID `gorm:"type:uuid;index"`
	EmergencyContact   string     `gorm:"type:varchar(255)"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers" instead of "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(profile *driver.DriverProfile) DriverDTO {
	var assignedVehicleID *uuid.UUID
	if profile.AssignedVehicleID() != nil {
		raw := profile.AssignedVehicleID().Bytes()
		assignedVehicleID = &raw
	}

	return DriverDTO{
		ID:                 profile.ID().Bytes(),
		UserID:             profile.UserID().Bytes(),
		LicenseNumber:      profile.LicenseNumber(),
		LicenseClass:       profile.LicenseClass(),
		LicenseExpiry:      profile.LicenseExpiry(),
		AvailabilityStatus: profile.AvailabilityStatus().String(),
		AssignedVehicleID:  assignedVehicleID,
		EmergencyContact:   profile.EmergencyContact(),
		CreatedAt:          profile.CreatedAt(),
		UpdatedAt:          profile.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
// Reconstructs the aggregate with its persisted state using RestoreDriverProfile.
func toDomain(dto DriverDTO) (*driver.DriverProfile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.AvailabilityStatus)
	if err != nil {
		return nil, err
	}

	var assignedVehicleID *kernel.UUID
	if dto.AssignedVehicleID != nil {
		vehicleID, vErr := kernel.UUIDFromBytes((*dto.AssignedVehicleID)[:])
		if vErr != nil {
			return nil, vErr
		}
		assignedVehicleID = &vehicleID
	}

	return driver.RestoreDriverProfile(
		id,
		userID,
		dto.LicenseNumber,
		dto.LicenseClass,
		dto.LicenseExpiry,
		status,
		assignedVehicleID,
		dto.EmergencyContact,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
