// Package tariff holds the immutable pricing inputs of the logistics core:
// destinations grouped into geographic zones, and tariffs that price a
// shipment from its weight and volume. Tariff values are externally
// supplied; this core never edits them after creation.
package tariff

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeRate is returned when a tariff fee or rate is negative.
	ErrNegativeRate = errs.NewValueIsInvalidError("tariff rates must not be negative")
	// ErrDestinationIsRequired is returned when creating a tariff without a destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
	// ErrTariffIsNotConstructed is returned when using an improperly initialized Tariff.
	ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff constructor")
)

// Tariff is a pricing rule tied to a destination and service class.
// A shipment priced against a tariff owes
//
//	base + weight*perWeight + volume*perVolume
//
// Tariff carries a snapshot of the destination's zone so that route
// validation does not need a destination lookup per shipment.
type Tariff struct {
	id            kernel.UUID
	serviceClass  ServiceClass
	base          decimal.Decimal
	perWeight     decimal.Decimal
	perVolume     decimal.Decimal
	destinationID kernel.UUID
	zone          kernel.Zone

	guard guard.ConstructorGuard
}

// NewTariff creates a validated Tariff for the given destination.
// All fees and rates must be non-negative.
func NewTariff(
	id kernel.UUID,
	serviceClass ServiceClass,
	base, perWeight, perVolume decimal.Decimal,
	destination *Destination,
) (*Tariff, error) {
	if destination == nil {
		return nil, ErrDestinationIsRequired
	}

	if err := errors.Join(
		id.Validate(),
		serviceClass.Validate(),
		destination.Validate(),
		validateRates(base, perWeight, perVolume),
	); err != nil {
		return nil, err
	}

	return &Tariff{
		id:            id,
		serviceClass:  serviceClass,
		base:          base,
		perWeight:     perWeight,
		perVolume:     perVolume,
		destinationID: destination.ID(),
		zone:          destination.Zone(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreTariff rehydrates a Tariff from persistence without requiring the
// full destination aggregate; the zone snapshot is stored alongside.
func RestoreTariff(
	id kernel.UUID,
	serviceClass ServiceClass,
	base, perWeight, perVolume decimal.Decimal,
	destinationID kernel.UUID,
	zone kernel.Zone,
) (*Tariff, error) {
	if err := errors.Join(
		id.Validate(),
		serviceClass.Validate(),
		destinationID.Validate(),
		zone.Validate(),
		validateRates(base, perWeight, perVolume),
	); err != nil {
		return nil, err
	}

	return &Tariff{
		id:            id,
		serviceClass:  serviceClass,
		base:          base,
		perWeight:     perWeight,
		perVolume:     perVolume,
		destinationID: destinationID,
		zone:          zone,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Tariff was created via its constructor.
func (t *Tariff) Validate() error {
	if t == nil {
		return ErrTariffIsNotConstructed
	}
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// ID returns the tariff's unique identifier.
func (t *Tariff) ID() kernel.UUID {
	return t.id
}

// ServiceClass returns the commercial service level priced by the tariff.
func (t *Tariff) ServiceClass() ServiceClass {
	return t.serviceClass
}

// Base returns the fixed destination fee.
func (t *Tariff) Base() decimal.Decimal {
	return t.base
}

// PerWeight returns the fee charged per unit of weight.
func (t *Tariff) PerWeight() decimal.Decimal {
	return t.perWeight
}

// PerVolume returns the fee charged per unit of volume.
func (t *Tariff) PerVolume() decimal.Decimal {
	return t.perVolume
}

// DestinationID returns the identifier of the priced destination.
func (t *Tariff) DestinationID() kernel.UUID {
	return t.destinationID
}

// Zone returns the geographic zone of the priced destination.
func (t *Tariff) Zone() kernel.Zone {
	return t.zone
}

// PriceFor computes the estimated amount for a shipment of the given
// weight and volume. Pure function of the tariff and its inputs.
func (t *Tariff) PriceFor(weight, volume decimal.Decimal) decimal.Decimal {
	return t.base.
		Add(weight.Mul(t.perWeight)).
		Add(volume.Mul(t.perVolume))
}

func validateRates(rates ...decimal.Decimal) error {
	for _, rate := range rates {
		if rate.IsNegative() {
			return ErrNegativeRate
		}
	}
	return nil
}
