package queries

import (
	"context"
	"database/sql"

	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler retrieves vehicles from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for vehicle listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the vehicle listing query.
// Returns a slice of vehicle read models sorted by vehicle number. The
// result is never nil: an empty fleet yields an empty slice.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			vehicle_number,
			vehicle_type,
			status,
			capacity_kg,
			assigned_driver_id,
			make,
			model,
			year,
			last_maintenance,
			next_maintenance
		FROM vehicles
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.Status() != nil {
		sqlQuery += " AND status = ?"
		args = append(args, query.Status().String())
	}
	if query.VehicleType() != nil {
		sqlQuery += " AND vehicle_type = ?"
		args = append(args, query.VehicleType().String())
	}
	sqlQuery += " ORDER BY vehicle_number"

	vehicles := make([]GetAllVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllVehiclesQueryResponse
		var id uuid.UUID
		var assignedDriverID uuid.NullUUID
		var vehicleMake, vehicleModel sql.NullString
		var year sql.NullInt64
		var lastMaintenance, nextMaintenance sql.NullTime

		err = rows.Scan(
			&id,
			&response.VehicleNumber,
			&response.VehicleType,
			&response.Status,
			&response.CapacityKg,
			&assignedDriverID,
			&vehicleMake,
			&vehicleModel,
			&year,
			&lastMaintenance,
			&nextMaintenance,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if assignedDriverID.Valid {
			driverID, idErr := kernel.UUIDFromBytes(assignedDriverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.AssignedDriverID = &driverID
		}
		response.Make = vehicleMake.String
		response.Model = vehicleModel.String
		response.Year = int(year.Int64)
		if lastMaintenance.Valid {
			t := lastMaintenance.Time
			response.LastMaintenance = &t
		}
		if nextMaintenance.Valid {
			t := nextMaintenance.Time
			response.NextMaintenance = &t
		}

		vehicles = append(vehicles, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
