package commands

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a request to register a new driver.
// Drivers start available; license format and category are validated by
// the aggregate constructor.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	name            string
	licenseNumber   string
	licenseCategory driver.LicenseCategory

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a driver.
func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name, licenseNumber string,
	licenseCategory driver.LicenseCategory,
) (RegisterDriverCommand, error) {
	if err := errors.Join(
		driverID.Validate(),
		licenseCategory.Validate(),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return RegisterDriverCommand{
		driverID:        driverID,
		name:            name,
		licenseNumber:   licenseNumber,
		licenseCategory: licenseCategory,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's display name.
func (c RegisterDriverCommand) Name() string {
	return c.name
}

// LicenseNumber returns the driver's license number.
func (c RegisterDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// LicenseCategory returns the driver's license category.
func (c RegisterDriverCommand) LicenseCategory() driver.LicenseCategory {
	return c.licenseCategory
}
