package driver

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

// licenseClassPattern matches one or two uppercase letters, e.g. "B" or "CE".
var licenseClassPattern = regexp.MustCompile(`^[A-Z]{1,2}$`)

// Domain errors for driver operations.
var (
	// ErrLicenseNumberIsRequired is returned when creating a driver without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("licenseNumber")
	// ErrLicenseClassIsInvalid is returned when the license class is not one or two uppercase letters.
	ErrLicenseClassIsInvalid = errs.NewValueIsInvalidError("licenseClass")
	// ErrLicenseExpiryNotInFuture is returned when the license expiry date is not strictly in the future.
	ErrLicenseExpiryNotInFuture = errs.NewValueIsInvalidError("licenseExpiry must be strictly in the future")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized DriverProfile.
	ErrDriverIsNotConstructed = errors.New("DriverProfile must be created via NewDriverProfile constructor")
)

// DriverProfile is the aggregate root for a driver record. It owns the
// driver's license data and availability lifecycle, and mirrors the currently
// assigned vehicle as a back-reference maintained exclusively by the
// assignment coordinator.
//
// Invariants:
//   - availabilityStatus = BUSY if and only if assignedVehicleID is set
//   - direct availability changes never touch BUSY; MarkAssigned and
//     MarkUnassigned are the only entry and exit points, and they are called
//     by the coordinator inside its transaction
//   - license class matches one or two uppercase letters; expiry is strictly
//     in the future at creation time
type DriverProfile struct {
	id                 kernel.UUID
	userID             kernel.UUID
	licenseNumber      string
	licenseClass       string
	licenseExpiry      time.Time
	availabilityStatus AvailabilityStatus
	assignedVehicleID  *kernel.UUID
	emergencyContact   string
	createdAt          time.Time
	updatedAt          time.Time

	guard guard.ConstructorGuard
}

// NewDriverProfile creates a driver profile for a user. This is the only way
// to create a valid DriverProfile; the new driver starts AVAILABLE with no
// assigned vehicle.
//
// Validation applied:
//   - id and userID must be valid UUIDs
//   - licenseNumber must be non-empty
//   - licenseClass must match one or two uppercase letters
//   - licenseExpiry must be strictly in the future
//
// emergencyContact is optional and may be empty.
func NewDriverProfile(
	id kernel.UUID,
	userID kernel.UUID,
	licenseNumber string,
	licenseClass string,
	licenseExpiry time.Time,
	emergencyContact string,
) (*DriverProfile, error) {
	now := time.Now().UTC()
	d := &DriverProfile{
		availabilityStatus: StatusAvailable,
		emergencyContact:   emergencyContact,
		createdAt:          now,
		updatedAt:          now,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setLicenseNumber(licenseNumber),
		d.setLicenseClass(licenseClass),
		d.setLicenseExpiry(licenseExpiry, now),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriverProfile reconstructs a DriverProfile from persistent storage,
// including its availability status and vehicle back-reference. Unlike
// NewDriverProfile it does not re-check the expiry-in-future rule: a stored
// profile may legitimately carry an already expired license.
func RestoreDriverProfile(
	id kernel.UUID,
	userID kernel.UUID,
	licenseNumber string,
	licenseClass string,
	licenseExpiry time.Time,
	availabilityStatus AvailabilityStatus,
	assignedVehicleID *kernel.UUID,
	emergencyContact string,
	createdAt time.Time,
	updatedAt time.Time,
) (*DriverProfile, error) {
	d := &DriverProfile{
		licenseExpiry:      licenseExpiry,
		availabilityStatus: availabilityStatus,
		assignedVehicleID:  assignedVehicleID,
		emergencyContact:   emergencyContact,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setLicenseNumber(licenseNumber),
		d.setLicenseClass(licenseClass),
		availabilityStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return d, d.checkMirror()
}

// IsEqual compares two drivers by identity.
func (d *DriverProfile) IsEqual(other *DriverProfile) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// Validate checks constructor usage and the BUSY/back-reference mirror
// invariant. Repositories call this before every write, so a profile whose
// mirror drifted from the ledger can never be persisted.
func (d *DriverProfile) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	if err := d.guard.Validate(ErrDriverIsNotConstructed); err != nil {
		return err
	}
	return d.checkMirror()
}

// ID returns the driver's unique identifier.
func (d *DriverProfile) ID() kernel.UUID {
	return d.id
}

// UserID returns the identity-service user this profile belongs to.
// A user has at most one driver profile.
func (d *DriverProfile) UserID() kernel.UUID {
	return d.userID
}

// LicenseNumber returns the driver's license number, unique across drivers.
func (d *DriverProfile) LicenseNumber() string {
	return d.licenseNumber
}

// LicenseClass returns the license class code.
func (d *DriverProfile) LicenseClass() string {
	return d.licenseClass
}

// LicenseExpiry returns the license expiry date.
func (d *DriverProfile) LicenseExpiry() time.Time {
	return d.licenseExpiry
}

// AvailabilityStatus returns the driver's current availability.
func (d *DriverProfile) AvailabilityStatus() AvailabilityStatus {
	return d.availabilityStatus
}

// AssignedVehicleID returns the vehicle back-reference, or nil when the
// driver holds no active assignment. The value always matches the single
// ACTIVE ledger row for this driver.
func (d *DriverProfile) AssignedVehicleID() *kernel.UUID {
	return d.assignedVehicleID
}

// EmergencyContact returns the optional emergency contact, empty if unset.
func (d *DriverProfile) EmergencyContact() string {
	return d.emergencyContact
}

// CreatedAt returns the creation timestamp.
func (d *DriverProfile) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (d *DriverProfile) UpdatedAt() time.Time {
	return d.updatedAt
}

// SetAvailability performs a registry-facing availability change between
// AVAILABLE, OFF_DUTY and ON_LEAVE. Transitions touching BUSY, or any change
// while the driver holds an active assignment, fail with an
// InvariantViolationError: those moves belong to the assignment coordinator.
func (d *DriverProfile) SetAvailability(status AvailabilityStatus) error {
	if err := d.availabilityStatus.ValidateDirectTransition(status); err != nil {
		return err
	}

	if d.assignedVehicleID != nil {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("driver %s holds an active assignment and cannot change availability directly", d.id),
		)
	}

	d.availabilityStatus = status
	d.touch()
	return nil
}

// MarkAssigned is the coordinator-only entry into BUSY: it sets the vehicle
// back-reference and flips the status in one step so the mirror invariant
// holds at every observable point. The driver must be AVAILABLE with no
// back-reference; anything else means the coordinator's precondition checks
// were bypassed and fails with an InvariantViolationError.
func (d *DriverProfile) MarkAssigned(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	if d.assignedVehicleID != nil {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("driver %s already holds an active assignment", d.id),
		)
	}
	if !d.availabilityStatus.IsAssignable() {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("driver %s is %s and cannot be marked assigned", d.id, d.availabilityStatus),
		)
	}

	d.availabilityStatus = StatusBusy
	d.assignedVehicleID = &vehicleID
	d.touch()
	return nil
}

// MarkUnassigned is the coordinator-only exit from BUSY, returning the driver
// to AVAILABLE and clearing the back-reference.
func (d *DriverProfile) MarkUnassigned() error {
	if d.availabilityStatus != StatusBusy || d.assignedVehicleID == nil {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("driver %s is %s and holds no active assignment", d.id, d.availabilityStatus),
		)
	}

	d.availabilityStatus = StatusAvailable
	d.assignedVehicleID = nil
	d.touch()
	return nil
}

// checkMirror enforces: status is BUSY if and only if a vehicle back-reference exists.
func (d *DriverProfile) checkMirror() error {
	busy := d.availabilityStatus == StatusBusy
	if busy != (d.assignedVehicleID != nil) {
		return errs.NewInvariantViolationError(
			fmt.Sprintf("driver %s is %s but assignedVehicleId mirror disagrees", d.id, d.availabilityStatus),
		)
	}
	return nil
}

func (d *DriverProfile) touch() {
	d.updatedAt = time.Now().UTC()
}

func (d *DriverProfile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.id = id
	return nil
}

func (d *DriverProfile) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	d.userID = id
	return nil
}

func (d *DriverProfile) setLicenseNumber(number string) error {
	if number == "" {
		return ErrLicenseNumberIsRequired
	}

	d.licenseNumber = number
	return nil
}

func (d *DriverProfile) setLicenseClass(class string) error {
	if !licenseClassPattern.MatchString(class) {
		return ErrLicenseClassIsInvalid
	}

	d.licenseClass = class
	return nil
}

func (d *DriverProfile) setLicenseExpiry(expiry time.Time, now time.Time) error {
	if !expiry.After(now) {
		return ErrLicenseExpiryNotInFuture
	}

	d.licenseExpiry = expiry
	return nil
}
