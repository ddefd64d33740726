// Package driver provides the Driver aggregate of the logistics system.
// A driver is the exclusively held resource of an active route: while a
// route holds a driver, the driver's availability flag is false and no
// other route may acquire them. The flag flip itself must be an atomic
// compare-and-set at the persistence layer; the aggregate only models the
// in-memory state change and its conflict rules.
package driver

import (
	"errors"
	"fmt"
	"regexp"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// licenseNumberPattern matches the national 10-digit license number format.
var licenseNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLicenseNumberIsInvalid is returned when the license number is not exactly 10 digits.
	ErrLicenseNumberIsInvalid = errs.NewValueIsInvalidError("license number must contain exactly 10 digits")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
)

// Driver represents a delivery driver with a license category and an
// availability flag. Availability is false exactly while one active route
// exclusively holds the driver.
type Driver struct {
	id              kernel.UUID
	name            string
	licenseNumber   string
	licenseCategory LicenseCategory
	available       bool

	guard guard.ConstructorGuard
}

// NewDriver creates a new available Driver.
// The license number must be exactly 10 digits.
func NewDriver(id kernel.UUID, name, licenseNumber string, category LicenseCategory) (*Driver, error) {
	if err := errors.Join(
		id.Validate(),
		validateName(name),
		validateLicenseNumber(licenseNumber),
		category.Validate(),
	); err != nil {
		return nil, err
	}

	return &Driver{
		id:              id,
		name:            name,
		licenseNumber:   licenseNumber,
		licenseCategory: category,
		available:       true,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestoreDriver rehydrates a Driver from persistence with its stored
// availability.
func RestoreDriver(id kernel.UUID, name, licenseNumber string, category LicenseCategory, available bool) (*Driver, error) {
	d, err := NewDriver(id, name, licenseNumber, category)
	if err != nil {
		return nil, err
	}
	d.available = available
	return d, nil
}

// Validate ensures the Driver was created via its constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// LicenseNumber returns the driver's national license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// LicenseCategory returns the class of vehicle the driver may operate.
func (d *Driver) LicenseCategory() LicenseCategory {
	return d.licenseCategory
}

// IsAvailable reports whether the driver is free to be assigned a route.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// Acquire flips the driver to unavailable on behalf of a route.
// Returns a conflict error if the driver is already held. This models the
// in-memory rule only; concurrent acquisitions are serialized by the
// repository's compare-and-set.
func (d *Driver) Acquire() error {
	if !d.available {
		return errs.NewConflictErrorWithCause("driver", d.id.String(), fmt.Errorf("driver %s already assigned", d.name))
	}
	d.available = false
	return nil
}

// Release makes the driver available again after their route closed.
// Releasing an already-available driver is a no-op.
func (d *Driver) Release() {
	d.available = true
}

func validateName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	return nil
}

func validateLicenseNumber(licenseNumber string) error {
	if !licenseNumberPattern.MatchString(licenseNumber) {
		return ErrLicenseNumberIsInvalid
	}
	return nil
}
