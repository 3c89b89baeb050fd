// Package http is the inbound REST adapter. It translates the resource
// assignment API into commands and queries, wraps every reply in the uniform
// envelope and maps the error taxonomy onto HTTP status codes.
package http

import (
	"strconv"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDriverHandler          commands.CreateDriverCommandHandler
	setDriverAvailabilityHandler commands.SetDriverAvailabilityCommandHandler
	registerVehicleHandler       commands.RegisterVehicleCommandHandler
	setVehicleStatusHandler      commands.SetVehicleStatusCommandHandler
	assignVehicleHandler         commands.AssignVehicleCommandHandler
	unassignVehicleHandler       commands.UnassignVehicleCommandHandler

	// Query handlers
	getAllDriversHandler  queries.GetAllDriversQueryHandler
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler
	getAssignmentsHandler queries.GetAssignmentsQueryHandler

	// Single-resource reads go through repositories outside a transaction.
	uowFactory ports.UnitOfWorkFactory
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createDriverHandler commands.CreateDriverCommandHandler,
	setDriverAvailabilityHandler commands.SetDriverAvailabilityCommandHandler,
	registerVehicleHandler commands.RegisterVehicleCommandHandler,
	setVehicleStatusHandler commands.SetVehicleStatusCommandHandler,
	assignVehicleHandler commands.AssignVehicleCommandHandler,
	unassignVehicleHandler commands.UnassignVehicleCommandHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler,
	getAssignmentsHandler queries.GetAssignmentsQueryHandler,
	uowFactory ports.UnitOfWorkFactory,
) *Server {
	return &Server{
		createDriverHandler:          createDriverHandler,
		setDriverAvailabilityHandler: setDriverAvailabilityHandler,
		registerVehicleHandler:       registerVehicleHandler,
		setVehicleStatusHandler:      setVehicleStatusHandler,
		assignVehicleHandler:         assignVehicleHandler,
		unassignVehicleHandler:       unassignVehicleHandler,
		getAllDriversHandler:         getAllDriversHandler,
		getAllVehiclesHandler:        getAllVehiclesHandler,
		getAssignmentsHandler:        getAssignmentsHandler,
		uowFactory:                   uowFactory,
	}
}

// RegisterRoutes mounts the API under /api/v1. Mutating routes require a
// bearer token and pass through contract validation; reads are open.
func (s *Server) RegisterRoutes(e *echo.Echo, authenticate echo.MiddlewareFunc) error {
	validate, err := newRequestValidator()
	if err != nil {
		return err
	}

	api := e.Group("/api/v1")
	api.GET("/health", s.Health)

	api.POST("/drivers", s.CreateDriver, authenticate, validate)
	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/available", s.GetAvailableDrivers)
	api.GET("/drivers/:driverId", s.GetDriver)
	api.GET("/drivers/user/:userId", s.GetDriverByUser)
	api.PUT("/drivers/:driverId/availability", s.SetDriverAvailability, authenticate, validate)

	api.POST("/vehicles", s.RegisterVehicle, authenticate, validate)
	api.GET("/vehicles", s.GetVehicles)
	api.GET("/vehicles/available", s.GetAvailableVehicles)
	api.GET("/vehicles/by-number/:vehicleNumber", s.GetVehicleByNumber)
	api.GET("/vehicles/:vehicleId", s.GetVehicle)
	api.PUT("/vehicles/:vehicleId/status", s.SetVehicleStatus, authenticate, validate)

	api.POST("/assignments", s.AssignVehicle, authenticate, validate)
	api.GET("/assignments", s.GetAssignments)
	api.GET("/assignments/active", s.GetActiveAssignments)
	api.GET("/assignments/:assignmentId", s.GetAssignment)
	api.GET("/assignments/driver/:driverId", s.GetAssignmentsForDriver)
	api.GET("/assignments/driver/:driverId/active", s.GetActiveAssignmentForDriver)
	api.GET("/assignments/vehicle/:vehicleId", s.GetAssignmentsForVehicle)
	api.GET("/assignments/vehicle/:vehicleId/active", s.GetActiveAssignmentForVehicle)
	api.POST("/assignments/:assignmentId/unassign", s.UnassignVehicle, authenticate, validate)
	api.POST("/assignments/driver/:driverId/unassign", s.UnassignByDriver, authenticate, validate)
	api.POST("/assignments/vehicle/:vehicleId/unassign", s.UnassignByVehicle, authenticate, validate)

	return nil
}

// Health handles GET /api/v1/health.
func (s *Server) Health(ctx echo.Context) error {
	return ok(ctx, "service is healthy", nil)
}

// CreateDriver handles POST /api/v1/drivers - registers a driver profile.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("userId", err))
	}

	cmd, err := commands.NewCreateDriverCommand(
		userID,
		req.LicenseNumber,
		req.LicenseClass,
		req.LicenseExpiry.Time,
		req.EmergencyContact,
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "driver registered", echo.Map{"driverId": cmd.DriverID().String()})
}

// GetDrivers handles GET /api/v1/drivers - lists drivers, optionally
// filtered by ?status= and ?search= (license substring).
func (s *Server) GetDrivers(ctx echo.Context) error {
	var status *driver.AvailabilityStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := driver.StatusFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		status = &parsed
	}

	return s.listDrivers(ctx, status, ctx.QueryParam("search"))
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context) error {
	status := driver.StatusAvailable
	return s.listDrivers(ctx, &status, "")
}

func (s *Server) listDrivers(ctx echo.Context, status *driver.AvailabilityStatus, search string) error {
	query, err := queries.NewGetAllDriversQuery(status, search)
	if err != nil {
		return fail(ctx, err)
	}

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	payload := make([]driverResponse, len(drivers))
	for i, model := range drivers {
		payload[i] = driverResponseFromReadModel(model)
	}

	return ok(ctx, "drivers retrieved", payload)
}

// GetDriver handles GET /api/v1/drivers/:driverId.
func (s *Server) GetDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	profile, err := s.uowFactory.Create().DriverRepository().Get(ctx.Request().Context(), driverID)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "driver retrieved", driverResponseFromAggregate(profile))
}

// GetDriverByUser handles GET /api/v1/drivers/user/:userId - resolves the
// driver profile belonging to an identity user.
func (s *Server) GetDriverByUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("userId", err))
	}

	profile, err := s.uowFactory.Create().DriverRepository().GetByUserID(ctx.Request().Context(), userID)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "driver retrieved", driverResponseFromAggregate(profile))
}

// SetDriverAvailability handles PUT /api/v1/drivers/:driverId/availability.
func (s *Server) SetDriverAvailability(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	var req setDriverAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	status, err := driver.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(driverID, status)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.setDriverAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "driver availability updated", nil)
}

// RegisterVehicle handles POST /api/v1/vehicles - registers a fleet vehicle.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var req registerVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	vehicleType, err := vehicle.TypeFromString(req.VehicleType)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRegisterVehicleCommand(
		req.VehicleNumber,
		vehicleType,
		req.CapacityKg,
		vehicle.Details{
			Make:            req.Make,
			Model:           req.Model,
			Year:            req.Year,
			LastMaintenance: dateToTime(req.LastMaintenance),
			NextMaintenance: dateToTime(req.NextMaintenance),
		},
	)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.registerVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "vehicle registered", echo.Map{"vehicleId": cmd.VehicleID().String()})
}

// GetVehicles handles GET /api/v1/vehicles - lists vehicles, optionally
// filtered by ?status= and ?vehicleType=.
func (s *Server) GetVehicles(ctx echo.Context) error {
	var status *vehicle.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := vehicle.StatusFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		status = &parsed
	}

	var vehicleType *vehicle.VehicleType
	if raw := ctx.QueryParam("vehicleType"); raw != "" {
		parsed, err := vehicle.TypeFromString(raw)
		if err != nil {
			return fail(ctx, err)
		}
		vehicleType = &parsed
	}

	return s.listVehicles(ctx, status, vehicleType)
}

// GetAvailableVehicles handles GET /api/v1/vehicles/available.
func (s *Server) GetAvailableVehicles(ctx echo.Context) error {
	status := vehicle.StatusAvailable
	return s.listVehicles(ctx, &status, nil)
}

func (s *Server) listVehicles(ctx echo.Context, status *vehicle.Status, vehicleType *vehicle.VehicleType) error {
	query, err := queries.NewGetAllVehiclesQuery(status, vehicleType)
	if err != nil {
		return fail(ctx, err)
	}

	vehicles, err := s.getAllVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	payload := make([]vehicleResponse, len(vehicles))
	for i, model := range vehicles {
		payload[i] = vehicleResponseFromReadModel(model)
	}

	return ok(ctx, "vehicles retrieved", payload)
}

// GetVehicle handles GET /api/v1/vehicles/:vehicleId.
func (s *Server) GetVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("vehicleId", err))
	}

	aggregate, err := s.uowFactory.Create().VehicleRepository().Get(ctx.Request().Context(), vehicleID)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "vehicle retrieved", vehicleResponseFromAggregate(aggregate))
}

// GetVehicleByNumber handles GET /api/v1/vehicles/by-number/:vehicleNumber -
// resolves a vehicle by its registration number.
func (s *Server) GetVehicleByNumber(ctx echo.Context) error {
	aggregate, err := s.uowFactory.Create().VehicleRepository().
		GetByNumber(ctx.Request().Context(), ctx.Param("vehicleNumber"))
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "vehicle retrieved", vehicleResponseFromAggregate(aggregate))
}

// SetVehicleStatus handles PUT /api/v1/vehicles/:vehicleId/status.
func (s *Server) SetVehicleStatus(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("vehicleId", err))
	}

	var req setVehicleStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	status, err := vehicle.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewSetVehicleStatusCommand(vehicleID, status)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.setVehicleStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "vehicle status updated", nil)
}

// AssignVehicle handles POST /api/v1/assignments - pairs a driver with a
// vehicle. The operator identity from the bearer token becomes AssignedBy.
func (s *Server) AssignVehicle(ctx echo.Context) error {
	var req createAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("vehicleId", err))
	}

	cmd, err := commands.NewAssignVehicleCommand(driverID, vehicleID, operatorName(ctx), req.Notes)
	if err != nil {
		return fail(ctx, err)
	}

	record, err := s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return created(ctx, "vehicle assigned", assignmentResponseFromRecord(record))
}

// GetAssignments handles GET /api/v1/assignments - full ledger, newest first.
func (s *Server) GetAssignments(ctx echo.Context) error {
	return s.listAssignments(ctx, false, nil, nil)
}

// GetActiveAssignments handles GET /api/v1/assignments/active.
func (s *Server) GetActiveAssignments(ctx echo.Context) error {
	return s.listAssignments(ctx, true, nil, nil)
}

// GetAssignmentsForDriver handles GET /api/v1/assignments/driver/:driverId.
func (s *Server) GetAssignmentsForDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	return s.listAssignments(ctx, false, &driverID, nil)
}

// GetAssignmentsForVehicle handles GET /api/v1/assignments/vehicle/:vehicleId.
func (s *Server) GetAssignmentsForVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("vehicleId", err))
	}

	return s.listAssignments(ctx, false, nil, &vehicleID)
}

func (s *Server) listAssignments(ctx echo.Context, activeOnly bool, driverID, vehicleID *kernel.UUID) error {
	query, err := queries.NewGetAssignmentsQuery(activeOnly, driverID, vehicleID)
	if err != nil {
		return fail(ctx, err)
	}

	records, err := s.getAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	payload := make([]assignmentResponse, len(records))
	for i, model := range records {
		payload[i] = assignmentResponseFromReadModel(model)
	}

	return ok(ctx, "assignments retrieved", payload)
}

// GetAssignment handles GET /api/v1/assignments/:assignmentId.
func (s *Server) GetAssignment(ctx echo.Context) error {
	assignmentID, err := strconv.ParseInt(ctx.Param("assignmentId"), 10, 64)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("assignmentId", err))
	}

	record, err := s.uowFactory.Create().AssignmentRepository().Get(ctx.Request().Context(), assignmentID)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "assignment retrieved", assignmentResponseFromRecord(record))
}

// GetActiveAssignmentForDriver handles
// GET /api/v1/assignments/driver/:driverId/active - the driver's current
// assignment, 404 when the driver is not paired.
func (s *Server) GetActiveAssignmentForDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	record, err := s.uowFactory.Create().AssignmentRepository().
		GetActiveForDriver(ctx.Request().Context(), driverID)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "assignment retrieved", assignmentResponseFromRecord(record))
}

// GetActiveAssignmentForVehicle handles
// GET /api/v1/assignments/vehicle/:vehicleId/active.
func (s *Server) GetActiveAssignmentForVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("vehicleId", err))
	}

	record, err := s.uowFactory.Create().AssignmentRepository().
		GetActiveForVehicle(ctx.Request().Context(), vehicleID)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "assignment retrieved", assignmentResponseFromRecord(record))
}

// UnassignVehicle handles POST /api/v1/assignments/:assignmentId/unassign -
// terminates an active assignment with the requested outcome.
func (s *Server) UnassignVehicle(ctx echo.Context) error {
	assignmentID, err := strconv.ParseInt(ctx.Param("assignmentId"), 10, 64)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("assignmentId", err))
	}

	return s.terminateAssignment(ctx, assignmentID)
}

// UnassignByDriver handles POST /api/v1/assignments/driver/:driverId/unassign -
// convenience form that resolves the driver's active assignment first.
func (s *Server) UnassignByDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("driverId", err))
	}

	record, err := s.uowFactory.Create().AssignmentRepository().
		GetActiveForDriver(ctx.Request().Context(), driverID)
	if err != nil {
		return fail(ctx, err)
	}

	return s.terminateAssignment(ctx, record.ID())
}

// UnassignByVehicle handles POST /api/v1/assignments/vehicle/:vehicleId/unassign.
func (s *Server) UnassignByVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleId"))
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("vehicleId", err))
	}

	record, err := s.uowFactory.Create().AssignmentRepository().
		GetActiveForVehicle(ctx.Request().Context(), vehicleID)
	if err != nil {
		return fail(ctx, err)
	}

	return s.terminateAssignment(ctx, record.ID())
}

// terminateAssignment binds the unassign payload and runs the coordinator
// release for the given ledger record. The record resolved by the convenience
// routes is re-checked inside the coordinator's transaction, so a stale
// lookup degrades to a conflict, never a double release.
func (s *Server) terminateAssignment(ctx echo.Context, assignmentID int64) error {
	var req unassignRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	outcome, err := assignment.StatusFromString(req.Outcome)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUnassignVehicleCommand(assignmentID, outcome, req.VehicleToMaintenance)
	if err != nil {
		return fail(ctx, err)
	}

	record, err := s.unassignVehicleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ok(ctx, "vehicle unassigned", assignmentResponseFromRecord(record))
}
