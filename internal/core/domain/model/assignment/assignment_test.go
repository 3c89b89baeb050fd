package assignment_test

import (
	"testing"
	"time"

	"fleet/internal/core/domain/model/assignment"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssignment(t *testing.T) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), "dispatcher-1", "night shift")
	require.NoError(t, err)
	return a
}

func TestNewAssignment(t *testing.T) {
	t.Run("starts_active_without_id", func(t *testing.T) {
		a := newTestAssignment(t)

		assert.True(t, a.IsActive())
		assert.Zero(t, a.ID())
		assert.Nil(t, a.UnassignedAt())
		assert.Equal(t, "dispatcher-1", a.AssignedBy())
		assert.Equal(t, "night shift", a.Notes())
		assert.False(t, a.AssignedAt().IsZero())
		require.NoError(t, a.Validate())
	})

	t.Run("empty_assigned_by_rejected", func(t *testing.T) {
		_, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_ids_rejected", func(t *testing.T) {
		var zero kernel.UUID
		_, err := assignment.NewAssignment(zero, kernel.NewUUID(), "dispatcher-1", "")
		require.Error(t, err)

		_, err = assignment.NewAssignment(kernel.NewUUID(), zero, "dispatcher-1", "")
		require.Error(t, err)
	})
}

func TestAssignment_AttachID(t *testing.T) {
	t.Run("binds_once", func(t *testing.T) {
		a := newTestAssignment(t)

		require.NoError(t, a.AttachID(42))
		assert.Equal(t, int64(42), a.ID())

		require.ErrorIs(t, a.AttachID(43), assignment.ErrIDAlreadyAttached)
		assert.Equal(t, int64(42), a.ID())
	})

	t.Run("non_positive_id_rejected", func(t *testing.T) {
		a := newTestAssignment(t)

		require.ErrorIs(t, a.AttachID(0), errs.ErrValueIsInvalid)
		require.ErrorIs(t, a.AttachID(-1), errs.ErrValueIsInvalid)
	})
}

func TestAssignment_Terminate(t *testing.T) {
	t.Run("completes_and_stamps_end", func(t *testing.T) {
		a := newTestAssignment(t)

		require.NoError(t, a.Terminate(assignment.StatusCompleted))

		assert.Equal(t, assignment.StatusCompleted, a.Status())
		assert.False(t, a.IsActive())
		require.NotNil(t, a.UnassignedAt())
		assert.False(t, a.UnassignedAt().Before(a.AssignedAt()))
		require.NoError(t, a.Validate())
	})

	t.Run("cancels", func(t *testing.T) {
		a := newTestAssignment(t)

		require.NoError(t, a.Terminate(assignment.StatusCancelled))
		assert.Equal(t, assignment.StatusCancelled, a.Status())
	})

	t.Run("terminal_record_cannot_terminate_again", func(t *testing.T) {
		a := newTestAssignment(t)
		require.NoError(t, a.Terminate(assignment.StatusCompleted))

		err := a.Terminate(assignment.StatusCancelled)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("active_is_not_an_outcome", func(t *testing.T) {
		a := newTestAssignment(t)

		err := a.Terminate(assignment.StatusActive)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreAssignment(t *testing.T) {
	t.Run("restores_terminal_record", func(t *testing.T) {
		opened := time.Now().UTC().Add(-2 * time.Hour)
		closed := opened.Add(time.Hour)

		a, err := assignment.RestoreAssignment(
			7, kernel.NewUUID(), kernel.NewUUID(),
			assignment.StatusCompleted, opened, &closed, "dispatcher-1", "")

		require.NoError(t, err)
		assert.Equal(t, int64(7), a.ID())
		assert.Equal(t, assignment.StatusCompleted, a.Status())
		require.NoError(t, a.Validate())
	})

	t.Run("active_with_end_timestamp_rejected", func(t *testing.T) {
		opened := time.Now().UTC()
		closed := opened.Add(time.Hour)

		_, err := assignment.RestoreAssignment(
			7, kernel.NewUUID(), kernel.NewUUID(),
			assignment.StatusActive, opened, &closed, "dispatcher-1", "")
		require.ErrorIs(t, err, errs.ErrInvariantViolation)
	})

	t.Run("terminal_without_end_timestamp_rejected", func(t *testing.T) {
		_, err := assignment.RestoreAssignment(
			7, kernel.NewUUID(), kernel.NewUUID(),
			assignment.StatusCancelled, time.Now().UTC(), nil, "dispatcher-1", "")
		require.ErrorIs(t, err, errs.ErrInvariantViolation)
	})

	t.Run("zero_id_rejected", func(t *testing.T) {
		_, err := assignment.RestoreAssignment(
			0, kernel.NewUUID(), kernel.NewUUID(),
			assignment.StatusActive, time.Now().UTC(), nil, "dispatcher-1", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAssignment_IsEqual(t *testing.T) {
	t.Run("records_without_id_never_equal", func(t *testing.T) {
		a, b := newTestAssignment(t), newTestAssignment(t)
		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(a))
	})

	t.Run("same_id_equal", func(t *testing.T) {
		a, b := newTestAssignment(t), newTestAssignment(t)
		require.NoError(t, a.AttachID(5))
		require.NoError(t, b.AttachID(5))
		assert.True(t, a.IsEqual(b))
	})
}

func TestAssignment_Validate(t *testing.T) {
	t.Run("zero_value_rejected", func(t *testing.T) {
		var a assignment.Assignment
		require.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
	})

	t.Run("nil_rejected", func(t *testing.T) {
		var a *assignment.Assignment
		require.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
	})
}

func TestStatus(t *testing.T) {
	t.Run("string_round_trip", func(t *testing.T) {
		for _, s := range []assignment.Status{
			assignment.StatusActive, assignment.StatusCompleted, assignment.StatusCancelled,
		} {
			parsed, err := assignment.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown_string_rejected", func(t *testing.T) {
		_, err := assignment.StatusFromString("PAUSED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("terminality", func(t *testing.T) {
		assert.False(t, assignment.StatusActive.IsTerminal())
		assert.True(t, assignment.StatusCompleted.IsTerminal())
		assert.True(t, assignment.StatusCancelled.IsTerminal())
	})
}
