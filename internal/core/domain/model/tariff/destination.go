package tariff

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrCityIsRequired is returned when creating a destination without a city.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
	// ErrCountryIsRequired is returned when creating a destination without a country.
	ErrCountryIsRequired = errs.NewValueIsRequiredError("country")
	// ErrDestinationIsNotConstructed is returned when using an improperly initialized Destination.
	ErrDestinationIsNotConstructed = errors.New("Destination must be created via NewDestination constructor")
)

// Destination is a delivery locality grouped into a geographic zone.
// Tariffs reference a destination; routes use the zone to keep a
// delivery run geographically homogeneous.
type Destination struct {
	id      kernel.UUID
	city    string
	country string
	zone    kernel.Zone

	guard guard.ConstructorGuard
}

// NewDestination creates a validated Destination.
// City and country must be non-empty and the zone must be one of the
// enumerated regions.
func NewDestination(id kernel.UUID, city, country string, zone kernel.Zone) (*Destination, error) {
	if err := errors.Join(
		id.Validate(),
		validateCity(city),
		validateCountry(country),
		zone.Validate(),
	); err != nil {
		return nil, err
	}

	return &Destination{
		id:      id,
		city:    city,
		country: country,
		zone:    zone,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// RestoreDestination rehydrates a Destination from persistence.
// Applies the same validation as NewDestination.
func RestoreDestination(id kernel.UUID, city, country string, zone kernel.Zone) (*Destination, error) {
	return NewDestination(id, city, country, zone)
}

// Validate ensures the Destination was created via its constructor.
func (d *Destination) Validate() error {
	if d == nil {
		return ErrDestinationIsNotConstructed
	}
	return d.guard.Validate(ErrDestinationIsNotConstructed)
}

// ID returns the destination's unique identifier.
func (d *Destination) ID() kernel.UUID {
	return d.id
}

// City returns the destination locality.
func (d *Destination) City() string {
	return d.city
}

// Country returns the destination country.
func (d *Destination) Country() string {
	return d.country
}

// Zone returns the geographic zone the destination belongs to.
func (d *Destination) Zone() kernel.Zone {
	return d.zone
}

func validateCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}
	return nil
}

func validateCountry(country string) error {
	if country == "" {
		return ErrCountryIsRequired
	}
	return nil
}
