// Package vehicle provides the Vehicle aggregate of the logistics system.
// A vehicle bounds the load of a route through its weight and volume
// capacities; declared capacities are themselves bounded by the vehicle
// class at creation and update.
package vehicle

import (
	"errors"
	"fmt"
	"regexp"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// registrationPattern matches the 6-digit registration plate format.
var registrationPattern = regexp.MustCompile(`^[0-9]{6}$`)

var (
	// ErrRegistrationIsInvalid is returned when the registration is not exactly 6 digits.
	ErrRegistrationIsInvalid = errs.NewValueIsInvalidError("registration must contain exactly 6 digits")
	// ErrStateIsRequired is returned when creating a vehicle without an operational state.
	ErrStateIsRequired = errs.NewValueIsRequiredError("operational state")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle represents a delivery vehicle with class-bounded capacities.
type Vehicle struct {
	id             kernel.UUID
	registration   string
	class          Class
	capacityWeight decimal.Decimal
	capacityVolume decimal.Decimal
	state          string

	guard guard.ConstructorGuard
}

// NewVehicle creates a validated Vehicle.
//
// Capacities must be strictly positive, and the weight capacity must not
// exceed the bound of the vehicle class (two-wheeler 100, car 500; trucks
// are unbounded).
func NewVehicle(
	id kernel.UUID,
	registration string,
	class Class,
	capacityWeight, capacityVolume decimal.Decimal,
	state string,
) (*Vehicle, error) {
	if err := errors.Join(
		id.Validate(),
		validateRegistration(registration),
		class.Validate(),
		validateCapacity("weight capacity", capacityWeight),
		validateCapacity("volume capacity", capacityVolume),
		validateState(state),
	); err != nil {
		return nil, err
	}

	if maxWeight, bounded := class.MaxWeightCapacity(); bounded && capacityWeight.GreaterThan(maxWeight) {
		return nil, errs.NewValueIsOutOfRangeError(
			fmt.Sprintf("weight capacity for %s", class),
			capacityWeight.String(), "0", maxWeight.String(),
		)
	}

	return &Vehicle{
		id:             id,
		registration:   registration,
		class:          class,
		capacityWeight: capacityWeight,
		capacityVolume: capacityVolume,
		state:          state,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreVehicle rehydrates a Vehicle from persistence.
// Applies the same validation as NewVehicle.
func RestoreVehicle(
	id kernel.UUID,
	registration string,
	class Class,
	capacityWeight, capacityVolume decimal.Decimal,
	state string,
) (*Vehicle, error) {
	return NewVehicle(id, registration, class, capacityWeight, capacityVolume, state)
}

// Validate ensures the Vehicle was created via its constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Registration returns the vehicle's registration plate.
func (v *Vehicle) Registration() string {
	return v.registration
}

// Class returns the vehicle's physical category.
func (v *Vehicle) Class() Class {
	return v.class
}

// CapacityWeight returns the maximum total shipment weight the vehicle carries.
func (v *Vehicle) CapacityWeight() decimal.Decimal {
	return v.capacityWeight
}

// CapacityVolume returns the maximum total shipment volume the vehicle carries.
func (v *Vehicle) CapacityVolume() decimal.Decimal {
	return v.capacityVolume
}

// State returns the free-text operational state.
func (v *Vehicle) State() string {
	return v.state
}

// SetState updates the operational state.
func (v *Vehicle) SetState(state string) error {
	if err := validateState(state); err != nil {
		return err
	}
	v.state = state
	return nil
}

func validateRegistration(registration string) error {
	if !registrationPattern.MatchString(registration) {
		return ErrRegistrationIsInvalid
	}
	return nil
}

func validateCapacity(name string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not greater than 0", value))
	}
	return nil
}

func validateState(state string) error {
	if state == "" {
		return ErrStateIsRequired
	}
	return nil
}
