package http

import (
	"context"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// MockDriverRepository is a testify mock for ports.DriverRepository.
type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *driver.DriverProfile) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *driver.DriverProfile) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.DriverProfile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*driver.DriverProfile)
	return profile, args.Error(1)
}

func (m *MockDriverRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*driver.DriverProfile, error) {
	args := m.Called(ctx, id)
	profile, _ := args.Get(0).(*driver.DriverProfile)
	return profile, args.Error(1)
}

func (m *MockDriverRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.DriverProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*driver.DriverProfile)
	return profile, args.Error(1)
}

// MockVehicleRepository is a testify mock for ports.VehicleRepository.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	aggregate, _ := args.Get(0).(*vehicle.Vehicle)
	return aggregate, args.Error(1)
}

func (m *MockVehicleRepository) GetByNumber(ctx context.Context, vehicleNumber string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, vehicleNumber)
	aggregate, _ := args.Get(0).(*vehicle.Vehicle)
	return aggregate, args.Error(1)
}

func (m *MockVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	aggregate, _ := args.Get(0).(*vehicle.Vehicle)
	return aggregate, args.Error(1)
}

func (m *MockVehicleRepository) GetAllMaintenanceDue(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	vehicles, _ := args.Get(0).([]*vehicle.Vehicle)
	return vehicles, args.Error(1)
}

// MockAssignmentRepository is a testify mock for ports.AssignmentRepository.
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id int64) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*assignment.Assignment)
	return record, args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveForDriver(ctx context.Context, driverID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, driverID)
	record, _ := args.Get(0).(*assignment.Assignment)
	return record, args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveForVehicle(ctx context.Context, vehicleID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, vehicleID)
	record, _ := args.Get(0).(*assignment.Assignment)
	return record, args.Error(1)
}

// MockUnitOfWork mocks the transaction lifecycle and hands out the fixed
// repositories it was built with. One type serves both the ports interface
// and the command-side unit of work contracts.
type MockUnitOfWork struct {
	mock.Mock
	drivers     *MockDriverRepository
	vehicles    *MockVehicleRepository
	assignments *MockAssignmentRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		drivers:     new(MockDriverRepository),
		vehicles:    new(MockVehicleRepository),
		assignments: new(MockAssignmentRepository),
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUnitOfWork) DriverRepository() ports.DriverRepository {
	return m.drivers
}

func (m *MockUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return m.vehicles
}

func (m *MockUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return m.assignments
}

// expectTransaction arms the usual Begin/Commit plus the deferred Rollback.
func (m *MockUnitOfWork) expectTransaction() {
	m.On("Begin", mock.Anything).Return(nil)
	m.On("Commit", mock.Anything).Return(nil)
	m.On("Rollback", mock.Anything).Return(nil)
}

// expectRollback arms Begin and the deferred Rollback for failing flows.
func (m *MockUnitOfWork) expectRollback() {
	m.On("Begin", mock.Anything).Return(nil)
	m.On("Rollback", mock.Anything).Return(nil)
}

// Factory stubs returning the shared mock unit of work.

type stubUnitOfWorkFactory struct {
	uow *MockUnitOfWork
}

func (f stubUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.uow
}

type stubDriverUoWFactory struct {
	uow *MockUnitOfWork
}

func (f stubDriverUoWFactory) Create() commands.DriverUoW {
	return f.uow
}

type stubVehicleUoWFactory struct {
	uow *MockUnitOfWork
}

func (f stubVehicleUoWFactory) Create() commands.VehicleUoW {
	return f.uow
}

type stubUoWFactory struct {
	uow *MockUnitOfWork
}

func (f stubUoWFactory) Create() commands.UoW {
	return f.uow
}

// MockIdentityClient is a testify mock for ports.IdentityClient.
type MockIdentityClient struct {
	mock.Mock
}

func (m *MockIdentityClient) GetUser(ctx context.Context, userID kernel.UUID) (ports.IdentityUser, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(ports.IdentityUser)
	return user, args.Error(1)
}
