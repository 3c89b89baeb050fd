package errs_test

import (
	"errors"
	"testing"

	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("driverId", "123")

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("driverId", "123", cause)

		assert.Equal(t, "driverId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: driverId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with numeric ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("assignmentId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("licenseNumber", "DL-998877")

		assert.Equal(t, "licenseNumber", err.ParamName)
		assert.Equal(t, "DL-998877", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: licenseNumber DL-998877", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := errs.NewObjectAlreadyExistsErrorWithCause("vehicleNumber", "ABC-1234", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: vehicleNumber ABC-1234 (cause: duplicate key value violates unique constraint)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("licenseClass")

		assert.Equal(t, "licenseClass", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: licenseClass", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("licenseClass", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: licenseClass (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("capacity", -5, 1, 100000)

		assert.Equal(t, "capacity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100000, err.Max)
		assert.Equal(t, "value is invalid: -5 is capacity, min value is 1, max value is 100000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("vehicleNumber")

	assert.Equal(t, "vehicleNumber", err.ParamName)
	assert.Equal(t, "value is required: vehicleNumber", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestPreconditionFailedError(t *testing.T) {
	t.Run("names the resource and its state", func(t *testing.T) {
		err := errs.NewPreconditionFailedError("driver", "d-1", "ON_LEAVE")

		assert.Equal(t, "driver", err.Resource)
		assert.Equal(t, "d-1", err.ID)
		assert.Equal(t, "ON_LEAVE", err.State)
		assert.Equal(t, "precondition failed: driver d-1 is ON_LEAVE", err.Error())
		assert.Equal(t, errs.ErrPreconditionFailed, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("stale read")
		err := errs.NewPreconditionFailedErrorWithCause("vehicle", "v-7", "MAINTENANCE", cause)
		assert.Equal(t, "precondition failed: vehicle v-7 is MAINTENANCE (cause: stale read)", err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("assignment 42", "COMPLETED")

	assert.Equal(t, "state transition is invalid: assignment 42 is COMPLETED", err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestInvariantViolationError(t *testing.T) {
	err := errs.NewInvariantViolationError("driver d-1 already holds an active assignment")

	assert.Equal(t,
		"invariant violation: driver d-1 already holds an active assignment",
		err.Error())
	assert.Equal(t, errs.ErrInvariantViolation, err.Unwrap())
}

func TestTimeoutError(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := errs.NewTimeoutErrorWithCause("assign", cause)

	assert.Equal(t, "operation timed out: assign (cause: context deadline exceeded)", err.Error())
	assert.Equal(t, errs.ErrTimeout, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrObjectAlreadyExists)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrPreconditionFailed)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrInvariantViolation)
		require.Error(t, errs.ErrTimeout)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "precondition failed", errs.ErrPreconditionFailed.Error())
		assert.Equal(t, "state transition is invalid", errs.ErrInvalidState.Error())
		assert.Equal(t, "invariant violation", errs.ErrInvariantViolation.Error())
		assert.Equal(t, "operation timed out", errs.ErrTimeout.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("driverId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewObjectAlreadyExistsError("userId", "u-1"), errs.ErrObjectAlreadyExists)
	require.ErrorIs(t, errs.NewValueIsInvalidError("capacity"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("vehicleId"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewPreconditionFailedError("driver", "d-1", "BUSY"), errs.ErrPreconditionFailed)
	require.ErrorIs(t, errs.NewInvalidStateError("assignment 1", "CANCELLED"), errs.ErrInvalidState)
	require.ErrorIs(t, errs.NewInvariantViolationError("mirror out of sync"), errs.ErrInvariantViolation)
	require.ErrorIs(t, errs.NewTimeoutError("unassign"), errs.ErrTimeout)
}
