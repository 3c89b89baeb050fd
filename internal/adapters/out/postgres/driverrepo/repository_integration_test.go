package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DriverRepositoryIntegrationTestSuite provides integration tests for DriverRepository
// using PostgreSQL containers to verify database persistence behavior.
type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
	tracker    *MockAggregateTracker
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&driverrepo.DriverDTO{}))
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db, suite.tracker)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ValidDriver_Success() {
	ctx := context.Background()

	// Create valid driver profile
	profile := suite.createTestDriver("DL-1000001")

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", profile.ID(), profile).Once()

	// Add driver to repository
	err := suite.repository.Add(ctx, profile)
	suite.Require().NoError(err)

	// Verify driver was persisted
	suite.assertDriverCount(1)

	// Assert that all expectations were met
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateLicenseNumber_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	// Add first driver
	first := suite.createTestDriver("DL-2000001")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Try to add a second driver with the same license number
	duplicate := suite.createTestDriver("DL-2000001")
	err := suite.repository.Add(ctx, duplicate)

	// Verify unique violation maps to domain error
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertDriverCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_DuplicateUserID_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	// Add first profile for the user
	userID := kernel.NewUUID()
	first := suite.createTestDriverForUser(userID, "DL-3000001")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Try to add a second profile for the same user
	duplicate := suite.createTestDriverForUser(userID, "DL-3000002")
	err := suite.repository.Add(ctx, duplicate)

	// Verify unique violation maps to domain error
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.assertDriverCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_ExistingDriver_ReturnsDriver() {
	ctx := context.Background()

	// Create and add driver
	original := suite.createTestDriver("DL-4000001")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Retrieve driver
	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	// Verify driver details
	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.UserID(), retrieved.UserID())
	suite.Equal(original.LicenseNumber(), retrieved.LicenseNumber())
	suite.Equal(original.LicenseClass(), retrieved.LicenseClass())
	suite.Equal(original.AvailabilityStatus(), retrieved.AvailabilityStatus())
	suite.Nil(retrieved.AssignedVehicleID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_NonExistentDriver_ReturnsNotFoundError() {
	ctx := context.Background()

	// Try to get non-existent driver
	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	// Verify error and result
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetByUserID_ExistingDriver_ReturnsDriver() {
	ctx := context.Background()

	// Create and add driver for a known user
	userID := kernel.NewUUID()
	original := suite.createTestDriverForUser(userID, "DL-5000001")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Retrieve by user ID
	retrieved, err := suite.repository.GetByUserID(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(userID, retrieved.UserID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetByUserID_UnknownUser_ReturnsNotFoundError() {
	ctx := context.Background()

	// Try to resolve a user with no profile
	retrieved, err := suite.repository.GetByUserID(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_AvailabilityChange_Persisted() {
	ctx := context.Background()

	// Create and add driver
	profile := suite.createTestDriver("DL-6000001")
	suite.tracker.On("TrackAggregate", profile.ID(), profile).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, profile))

	// Move the driver off duty
	suite.Require().NoError(profile.SetAvailability(driver.StatusOffDuty))
	suite.Require().NoError(suite.repository.Update(ctx, profile))

	// Retrieve and verify updated state
	retrieved, err := suite.repository.Get(ctx, profile.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.StatusOffDuty, retrieved.AvailabilityStatus())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestUpdate_AssignmentBackReference_RoundTrips() {
	ctx := context.Background()

	// Create and add driver
	profile := suite.createTestDriver("DL-7000001")
	suite.tracker.On("TrackAggregate", profile.ID(), profile).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, profile))

	// Mark assigned and persist
	vehicleID := kernel.NewUUID()
	suite.Require().NoError(profile.MarkAssigned(vehicleID))
	suite.Require().NoError(suite.repository.Update(ctx, profile))

	// Retrieve and verify the BUSY status and back-reference survived the round trip
	retrieved, err := suite.repository.Get(ctx, profile.ID())
	suite.Require().NoError(err)
	suite.Equal(driver.StatusBusy, retrieved.AvailabilityStatus())
	suite.Require().NotNil(retrieved.AssignedVehicleID())
	suite.True(vehicleID.IsEqual(*retrieved.AssignedVehicleID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingDriver_ReturnsDriver() {
	ctx := context.Background()

	// Create and add driver
	profile := suite.createTestDriver("DL-8000001")
	suite.tracker.On("TrackAggregate", profile.ID(), profile).Once()
	suite.Require().NoError(suite.repository.Add(ctx, profile))

	// GetForUpdate outside a transaction still returns the row
	retrieved, err := suite.repository.GetForUpdate(ctx, profile.ID())
	suite.Require().NoError(err)
	suite.Equal(profile.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestDriver creates a valid driver profile with the given license number.
func (suite *DriverRepositoryIntegrationTestSuite) createTestDriver(licenseNumber string) *driver.DriverProfile {
	return suite.createTestDriverForUser(kernel.NewUUID(), licenseNumber)
}

// createTestDriverForUser creates a valid driver profile bound to a specific user.
func (suite *DriverRepositoryIntegrationTestSuite) createTestDriverForUser(
	userID kernel.UUID, licenseNumber string,
) *driver.DriverProfile {
	profile, err := driver.NewDriverProfile(
		kernel.NewUUID(),
		userID,
		licenseNumber,
		"CE",
		time.Now().UTC().AddDate(2, 0, 0),
		"+254-700-000-001",
	)
	suite.Require().NoError(err)
	return profile
}

// assertDriverCount verifies the number of drivers in the database.
func (suite *DriverRepositoryIntegrationTestSuite) assertDriverCount(expected int) {
	var count int64
	err := suite.db.Model(&driverrepo.DriverDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
