package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand represents a request to register a new vehicle.
// Registration format, class and capacity bounds are validated by the
// aggregate constructor.
type RegisterVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID      kernel.UUID
	registration   string
	class          vehicle.Class
	capacityWeight decimal.Decimal
	capacityVolume decimal.Decimal
	state          string

	guard guard.ConstructorGuard
}

// NewRegisterVehicleCommand creates a command to register a vehicle.
func NewRegisterVehicleCommand(
	vehicleID kernel.UUID,
	registration string,
	class vehicle.Class,
	capacityWeight, capacityVolume decimal.Decimal,
	state string,
) (RegisterVehicleCommand, error) {
	if err := errors.Join(
		vehicleID.Validate(),
		class.Validate(),
	); err != nil {
		return RegisterVehicleCommand{}, err
	}

	return RegisterVehicleCommand{
		vehicleID:      vehicleID,
		registration:   registration,
		class:          class,
		capacityWeight: capacityWeight,
		capacityVolume: capacityVolume,
		state:          state,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the vehicle.
func (c RegisterVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Registration returns the vehicle registration number.
func (c RegisterVehicleCommand) Registration() string {
	return c.registration
}

// Class returns the vehicle class.
func (c RegisterVehicleCommand) Class() vehicle.Class {
	return c.class
}

// CapacityWeight returns the weight capacity in kilograms.
func (c RegisterVehicleCommand) CapacityWeight() decimal.Decimal {
	return c.capacityWeight
}

// CapacityVolume returns the volume capacity in cubic meters.
func (c RegisterVehicleCommand) CapacityVolume() decimal.Decimal {
	return c.capacityVolume
}

// State returns the vehicle's operational state.
func (c RegisterVehicleCommand) State() string {
	return c.state
}
