package queries

import (
	"context"
	"database/sql"

	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAssignmentsQueryHandler retrieves assignment ledger records from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignmentsQueryHandler creates a handler for ledger listing queries.
// Requires a GORM database connection for query execution.
func NewGetAssignmentsQueryHandler(db *gorm.DB) GetAssignmentsQueryHandler {
	return GetAssignmentsQueryHandler{db: db}
}

// Handle executes the ledger listing query.
// Records come back newest first: the ledger IDs are monotonic, so ordering
// by ID descending orders by assignment time. The result is never nil.
func (h GetAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAssignmentsQuery,
) ([]GetAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			driver_id,
			vehicle_id,
			status,
			assigned_at,
			unassigned_at,
			assigned_by,
			notes
		FROM assignments
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if query.ActiveOnly() {
		sqlQuery += " AND status = 'ACTIVE'"
	}
	if query.DriverID() != nil {
		sqlQuery += " AND driver_id = ?"
		args = append(args, query.DriverID().Bytes())
	}
	if query.VehicleID() != nil {
		sqlQuery += " AND vehicle_id = ?"
		args = append(args, query.VehicleID().Bytes())
	}
	sqlQuery += " ORDER BY id DESC"

	records := make([]GetAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAssignmentsQueryResponse
		var driverID, vehicleID uuid.UUID
		var unassignedAt sql.NullTime
		var notes sql.NullString

		err = rows.Scan(
			&response.ID,
			&driverID,
			&vehicleID,
			&response.Status,
			&response.AssignedAt,
			&unassignedAt,
			&response.AssignedBy,
			&notes,
		)
		if err != nil {
			return nil, err
		}

		if response.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
			return nil, err
		}
		if response.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if unassignedAt.Valid {
			t := unassignedAt.Time
			response.UnassignedAt = &t
		}
		response.Notes = notes.String

		records = append(records, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
