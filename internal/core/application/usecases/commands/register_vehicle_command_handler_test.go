package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/vehicle"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterVehicleCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterVehicleCommand(
		"FL-0042", vehicle.TypeTruck, 8000, vehicle.Details{Make: "Volvo", Model: "FH16", Year: 2021})
	require.NoError(t, err)

	var captured *vehicle.Vehicle
	mockRepo := new(MockVehicleRepository)
	mockUoW := new(MockVehicleUoW)
	mockFactory := new(MockVehicleUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(v *vehicle.Vehicle) bool {
			captured = v
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterVehicleCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, cmd.VehicleID(), captured.ID())
	assert.Equal(t, "FL-0042", captured.VehicleNumber())
	assert.Equal(t, vehicle.StatusAvailable, captured.Status())
	require.NoError(t, captured.Validate())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterVehicleCommandHandler_Handle_DuplicateNumber(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterVehicleCommand("FL-1", vehicle.TypeVan, 1000, vehicle.Details{})
	require.NoError(t, err)

	duplicate := errs.NewObjectAlreadyExistsError("vehicleNumber", "FL-1")
	mockRepo := new(MockVehicleRepository)
	mockUoW := new(MockVehicleUoW)
	mockFactory := new(MockVehicleUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("VehicleRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(duplicate).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterVehicleCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterVehicleCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.RegisterVehicleCommand

	mockFactory := new(MockVehicleUoWFactory)
	handler := commands.NewRegisterVehicleCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrRegisterVehicleCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
