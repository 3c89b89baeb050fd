package driver

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// AvailabilityStatus represents the lifecycle state of a driver.
// It implements a state machine with an explicit transition table so that
// illegal status writes are rejected before they reach storage.
//
// State transitions:
//
//	AVAILABLE <──> OFF_DUTY <──> ON_LEAVE
//	    │ ▲            (any pair of the three, registry path)
//	    ▼ │
//	   BUSY   (coordinator path only, driven by the assignment lifecycle)
//
// Transitions to and from BUSY are reserved for the assignment coordinator:
// BUSY is entered by MarkAssigned and left by MarkUnassigned on the
// DriverProfile aggregate, never by a direct status write.
type AvailabilityStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized AvailabilityStatus values.
	StatusUnknown AvailabilityStatus = iota

	// StatusAvailable means the driver can be assigned a vehicle.
	StatusAvailable

	// StatusBusy means the driver currently holds an active assignment.
	// Held if and only if the driver's assignedVehicleId is set.
	StatusBusy

	// StatusOffDuty means the driver is off shift and cannot be assigned.
	StatusOffDuty

	// StatusOnLeave means the driver is on leave and cannot be assigned.
	StatusOnLeave
)

func getStatusStrings() map[AvailabilityStatus]string {
	return map[AvailabilityStatus]string{
		StatusUnknown:   "UNKNOWN",
		StatusAvailable: "AVAILABLE",
		StatusBusy:      "BUSY",
		StatusOffDuty:   "OFF_DUTY",
		StatusOnLeave:   "ON_LEAVE",
	}
}

func getValidStatusStrings() map[AvailabilityStatus]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[AvailabilityStatus]string{
		StatusAvailable: "AVAILABLE",
		StatusBusy:      "BUSY",
		StatusOffDuty:   "OFF_DUTY",
		StatusOnLeave:   "ON_LEAVE",
	}
}

// StatusFromString parses the wire/storage representation of a status.
// Returns a ValueIsInvalidError for anything outside the valid set.
func StatusFromString(s string) (AvailabilityStatus, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availabilityStatus",
		fmt.Errorf("%q is not a valid availability status", s),
	)
}

// Validate checks that the status is one of the valid values.
func (s AvailabilityStatus) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availabilityStatus",
			fmt.Errorf("%d is not a valid availability status", s),
		)
	}
	return nil
}

// String returns the storage/wire name of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s AvailabilityStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsAssignable reports whether a driver in this status may receive a new
// assignment. Only AVAILABLE drivers are assignable.
func (s AvailabilityStatus) IsAssignable() bool {
	return s == StatusAvailable
}

// ValidateDirectTransition checks the registry-facing transition table:
// any move between AVAILABLE, OFF_DUTY and ON_LEAVE is allowed, while
// anything touching BUSY is reserved for the assignment coordinator and
// fails with an InvariantViolationError.
func (s AvailabilityStatus) ValidateDirectTransition(to AvailabilityStatus) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if s == StatusBusy || to == StatusBusy {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("transition %s -> %s is reserved for the assignment coordinator", s, to),
		)
	}

	return nil
}
