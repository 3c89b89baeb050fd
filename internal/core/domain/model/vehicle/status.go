package vehicle

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status represents the lifecycle state of a vehicle.
//
// State transitions:
//
//	AVAILABLE <──> MAINTENANCE <──> OUT_OF_SERVICE
//	    │ ▲            (any pair of the three, registry path)
//	    ▼ │
//	 ASSIGNED   (coordinator path only)
//
// ASSIGNED is entered and left only through the aggregate's
// MarkAssigned/MarkUnassigned methods, which the assignment coordinator calls
// inside its transaction. Forcing an assigned vehicle into maintenance
// requires cancelling the assignment through the coordinator first.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the vehicle can be assigned to a driver.
	StatusAvailable

	// StatusAssigned means the vehicle is held by an active assignment.
	StatusAssigned

	// StatusMaintenance means the vehicle is undergoing maintenance.
	StatusMaintenance

	// StatusOutOfService means the vehicle is withdrawn from the fleet.
	StatusOutOfService
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "UNKNOWN",
		StatusAvailable:    "AVAILABLE",
		StatusAssigned:     "ASSIGNED",
		StatusMaintenance:  "MAINTENANCE",
		StatusOutOfService: "OUT_OF_SERVICE",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable:    "AVAILABLE",
		StatusAssigned:     "ASSIGNED",
		StatusMaintenance:  "MAINTENANCE",
		StatusOutOfService: "OUT_OF_SERVICE",
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
		fmt.Errorf("%q is not a valid vehicle status", s),
	)
}

// Validate checks that the status is one of the valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid vehicle status", s),
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

// IsAssignable reports whether a vehicle in this status may be the target of
// a new assignment. Vehicles in MAINTENANCE or OUT_OF_SERVICE never are.
func (s Status) IsAssignable() bool {
	return s == StatusAvailable
}

// ValidateDirectTransition checks the registry-facing transition table:
// any move between AVAILABLE, MAINTENANCE and OUT_OF_SERVICE is allowed,
// while anything touching ASSIGNED is reserved for the assignment
// coordinator.
func (s Status) ValidateDirectTransition(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if s == StatusAssigned || to == StatusAssigned {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("transition %s -> %s is reserved for the assignment coordinator", s, to),
		)
	}

	return nil
}
