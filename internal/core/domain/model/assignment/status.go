package assignment

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status represents the lifecycle state of an assignment ledger record.
//
// State transitions:
//
//	ACTIVE ──> COMPLETED
//	   │
//	   └─────> CANCELLED
//
// COMPLETED and CANCELLED are terminal. A record never returns to ACTIVE;
// re-pairing a driver and vehicle produces a new ledger record.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusActive means the assignment currently binds its driver and vehicle.
	StatusActive

	// StatusCompleted means the assignment ended normally.
	StatusCompleted

	// StatusCancelled means the assignment was terminated before completion.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusActive:    "ACTIVE",
		StatusCompleted: "COMPLETED",
		StatusCancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusActive:    "ACTIVE",
		StatusCompleted: "COMPLETED",
		StatusCancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire/storage representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid assignment status", s),
	)
}

// Validate checks that the status is one of the valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid assignment status", s),
		)
	}
	return nil
}

// String returns the storage/wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is COMPLETED or CANCELLED. Only
// terminal statuses are valid outcomes when terminating an ACTIVE assignment.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
