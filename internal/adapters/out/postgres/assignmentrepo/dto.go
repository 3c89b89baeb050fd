// Package assignmentrepo provides data transfer objects and mapping functions for the
// assignment ledger. This package implements the repository pattern for the assignment
// domain aggregate, handling the conversion between domain entities and database rows.
package assignmentrepo

import (
	"time"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting ledger records.
// The partial unique indexes on driver_id and vehicle_id cover only ACTIVE rows,
// so the database itself rejects a second active assignment for the same driver
// or vehicle even under concurrent writers. Terminal rows accumulate freely as
// history.
type AssignmentDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	DriverID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_assignments_active_driver,unique,where:status = 'ACTIVE'"`
	VehicleID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_assignments_active_vehicle,unique,where:status = 'ACTIVE'"`
	Status       string     `gorm:"type:varchar(16);not null;index"`
	AssignedAt   time.Time  `gorm:"type:timestamptz;not null"`
	UnassignedAt *time.Time `gorm:"type:timestamptz"`
	AssignedBy   string     `gorm:"type:varchar(255);not null"`
	Notes        string     `gorm:"type:text"`
}

// TableName specifies the database table name for ledger records.
// Overrides GORM's default naming convention to use "assignments" instead of "assignment_dtos".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(record *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           record.ID(),
		DriverID:     record.DriverID().Bytes(),
		VehicleID:    record.VehicleID().Bytes(),
		Status:       record.Status().String(),
		AssignedAt:   record.AssignedAt(),
		UnassignedAt: record.UnassignedAt(),
		AssignedBy:   record.AssignedBy(),
		Notes:        record.Notes(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
// Reconstructs the record with its persisted state using RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		dto.ID,
		driverID,
		vehicleID,
		status,
		dto.AssignedAt,
		dto.UnassignedAt,
		dto.AssignedBy,
		dto.Notes,
	)
}
