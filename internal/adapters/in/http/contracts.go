package http

import (
	"time"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"

	"github.com/oapi-codegen/runtime/types"
)

// Request bodies. Field names follow the embedded contract; date-only
// fields use types.Date so they round-trip as "2006-01-02".
type (
	createDriverRequest struct {
		UserID           string     `json:"userId"`
		LicenseNumber    string     `json:"licenseNumber"`
		LicenseClass     string     `json:"licenseClass"`
		LicenseExpiry    types.Date `json:"licenseExpiry"`
		EmergencyContact string     `json:"emergencyContact,omitempty"`
	}

	setDriverAvailabilityRequest struct {
		Status string `json:"status"`
	}

	registerVehicleRequest struct {
		VehicleNumber   string      `json:"vehicleNumber"`
		VehicleType     string      `json:"vehicleType"`
		CapacityKg      float64     `json:"capacityKg"`
		Make            string      `json:"make,omitempty"`
		Model           string      `json:"model,omitempty"`
		Year            int         `json:"year,omitempty"`
		LastMaintenance *types.Date `json:"lastMaintenance,omitempty"`
		NextMaintenance *types.Date `json:"nextMaintenance,omitempty"`
	}

	setVehicleStatusRequest struct {
		Status string `json:"status"`
	}

	createAssignmentRequest struct {
		DriverID  string `json:"driverId"`
		VehicleID string `json:"vehicleId"`
		Notes     string `json:"notes,omitempty"`
	}

	unassignRequest struct {
		Outcome              string `json:"outcome"`
		VehicleToMaintenance bool   `json:"vehicleToMaintenance,omitempty"`
	}
)

// Response payloads carried in the envelope's data field.
type (
	driverResponse struct {
		ID                 string     `json:"id"`
		UserID             string     `json:"userId"`
		LicenseNumber      string     `json:"licenseNumber"`
		LicenseClass       string     `json:"licenseClass"`
		LicenseExpiry      types.Date `json:"licenseExpiry"`
		AvailabilityStatus string     `json:"availabilityStatus"`
		AssignedVehicleID  *string    `json:"assignedVehicleId,omitempty"`
		EmergencyContact   string     `json:"emergencyContact,omitempty"`
	}

	vehicleResponse struct {
		ID               string     `json:"id"`
		VehicleNumber    string     `json:"vehicleNumber"`
		VehicleType      string     `json:"vehicleType"`
		Status           string     `json:"status"`
		CapacityKg       float64    `json:"capacityKg"`
		AssignedDriverID *string    `json:"assignedDriverId,omitempty"`
		Make             string     `json:"make,omitempty"`
		Model            string     `json:"model,omitempty"`
		Year             int        `json:"year,omitempty"`
		LastMaintenance  *time.Time `json:"lastMaintenance,omitempty"`
		NextMaintenance  *time.Time `json:"nextMaintenance,omitempty"`
	}

	assignmentResponse struct {
		ID           int64      `json:"id"`
		DriverID     string     `json:"driverId"`
		VehicleID    string     `json:"vehicleId"`
		Status       string     `json:"status"`
		AssignedAt   time.Time  `json:"assignedAt"`
		UnassignedAt *time.Time `json:"unassignedAt,omitempty"`
		AssignedBy   string     `json:"assignedBy"`
		Notes        string     `json:"notes,omitempty"`
	}
)

func dateToTime(date *types.Date) *time.Time {
	if date == nil {
		return nil
	}
	t := date.Time
	return &t
}

func uuidString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func driverResponseFromReadModel(model queries.GetAllDriversQueryResponse) driverResponse {
	return driverResponse{
		ID:                 model.ID.String(),
		UserID:             model.UserID.String(),
		LicenseNumber:      model.LicenseNumber,
		LicenseClass:       model.LicenseClass,
		LicenseExpiry:      types.Date{Time: model.LicenseExpiry},
		AvailabilityStatus: model.AvailabilityStatus,
		AssignedVehicleID:  uuidString(model.AssignedVehicleID),
		EmergencyContact:   model.EmergencyContact,
	}
}

func driverResponseFromAggregate(profile *driver.DriverProfile) driverResponse {
	return driverResponse{
		ID:                 profile.ID().String(),
		UserID:             profile.UserID().String(),
		LicenseNumber:      profile.LicenseNumber(),
		LicenseClass:       profile.LicenseClass(),
		LicenseExpiry:      types.Date{Time: profile.LicenseExpiry()},
		AvailabilityStatus: profile.AvailabilityStatus().String(),
		AssignedVehicleID:  uuidString(profile.AssignedVehicleID()),
		EmergencyContact:   profile.EmergencyContact(),
	}
}

func vehicleResponseFromReadModel(model queries.GetAllVehiclesQueryResponse) vehicleResponse {
	return vehicleResponse{
		ID:               model.ID.String(),
		VehicleNumber:    model.VehicleNumber,
		VehicleType:      model.VehicleType,
		Status:           model.Status,
		CapacityKg:       model.CapacityKg,
		AssignedDriverID: uuidString(model.AssignedDriverID),
		Make:             model.Make,
		Model:            model.Model,
		Year:             model.Year,
		LastMaintenance:  model.LastMaintenance,
		NextMaintenance:  model.NextMaintenance,
	}
}

func vehicleResponseFromAggregate(aggregate *vehicle.Vehicle) vehicleResponse {
	details := aggregate.Details()

	return vehicleResponse{
		ID:               aggregate.ID().String(),
		VehicleNumber:    aggregate.VehicleNumber(),
		VehicleType:      aggregate.VehicleType().String(),
		Status:           aggregate.Status().String(),
		CapacityKg:       aggregate.CapacityKg(),
		AssignedDriverID: uuidString(aggregate.AssignedDriverID()),
		Make:             details.Make,
		Model:            details.Model,
		Year:             details.Year,
		LastMaintenance:  details.LastMaintenance,
		NextMaintenance:  details.NextMaintenance,
	}
}

func assignmentResponseFromReadModel(model queries.GetAssignmentsQueryResponse) assignmentResponse {
	return assignmentResponse{
		ID:           model.ID,
		DriverID:     model.DriverID.String(),
		VehicleID:    model.VehicleID.String(),
		Status:       model.Status,
		AssignedAt:   model.AssignedAt,
		UnassignedAt: model.UnassignedAt,
		AssignedBy:   model.AssignedBy,
		Notes:        model.Notes,
	}
}

func assignmentResponseFromRecord(record *assignment.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:           record.ID(),
		DriverID:     record.DriverID().String(),
		VehicleID:    record.VehicleID().String(),
		Status:       record.Status().String(),
		AssignedAt:   record.AssignedAt(),
		UnassignedAt: record.UnassignedAt(),
		AssignedBy:   record.AssignedBy(),
		Notes:        record.Notes(),
	}
}
