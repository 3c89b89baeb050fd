package queries

import (
	"context"
	"database/sql"
	"time"

	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDriversQueryHandler retrieves driver profiles from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllDriversQueryHandler(db)
//	query, _ := NewGetAllDriversQuery(nil, "")
//
//	drivers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get drivers: %v", err)
//	    return err
//	}
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for driver listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the driver listing query.
// Returns a slice of driver read models sorted by license number. The result
// is never nil: an empty fleet yields an empty slice.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			user_id,
			license_number,
			license_class,
			license_expiry,
			availability_status,
			assigned_vehicle_id,
			emergency_contact
		FROM drivers
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.Status() != nil {
		sqlQuery += " AND availability_status = ?"
		args = append(args, query.Status().String())
	}
	if query.LicenseSearch() != "" {
		sqlQuery += " AND license_number ILIKE ?"
		args = append(args, "%"+query.LicenseSearch()+"%")
	}
	sqlQuery += " ORDER BY license_number"

	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllDriversQueryResponse
		var id, userID uuid.UUID
		var assignedVehicleID uuid.NullUUID
		var expiry time.Time
		var contact sql.NullString

		err = rows.Scan(
			&id,
			&userID,
			&response.LicenseNumber,
			&response.LicenseClass,
			&expiry,
			&response.AvailabilityStatus,
			&assignedVehicleID,
			&contact,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if assignedVehicleID.Valid {
			vehicleID, idErr := kernel.UUIDFromBytes(assignedVehicleID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.AssignedVehicleID = &vehicleID
		}
		response.LicenseExpiry = expiry
		response.EmergencyContact = contact.String

		drivers = append(drivers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
