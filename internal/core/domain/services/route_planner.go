package services

import (
	"fmt"
	"sort"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ShipmentLoad is the slice of a shipment the planner needs for route
// validation: its physical dimensions and the destination zone of its
// tariff. HasZone is false for unpriced shipments, which are exempt from
// the zone homogeneity check but still count against capacity.
type ShipmentLoad struct {
	ShipmentID kernel.UUID
	Weight     decimal.Decimal
	Volume     decimal.Decimal
	Zone       kernel.Zone
	HasZone    bool
}

// RoutePlanner is the domain service that validates the
// (driver, vehicle, shipment-set) association of a route.
//
// It enforces, in order and failing fast:
//  1. licensing compatibility between driver and vehicle
//  2. geographic homogeneity of the attached shipments' zones
//  3. vehicle capacity against the summed shipment weight and volume
//
// Driver availability, the remaining route-creation check, is not
// validated here: it is an acquisition, not a predicate, and must be an
// atomic compare-and-set at the persistence layer to exclude concurrent
// route creations for the same driver.
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// ValidateAssignment runs every planner check for the given association.
// Both the driver and vehicle must be valid aggregates. Returns the first
// violated check's error, nil when the assignment is acceptable.
func (p RoutePlanner) ValidateAssignment(d *driver.Driver, v *vehicle.Vehicle, loads []ShipmentLoad) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := v.Validate(); err != nil {
		return err
	}

	if err := p.CheckLicense(d.LicenseCategory(), v.Class()); err != nil {
		return err
	}
	if err := p.CheckZoneHomogeneity(loads); err != nil {
		return err
	}
	return p.CheckCapacity(v, loads)
}

// CheckLicense validates that the driver's license category covers the
// vehicle class: trucks require C, cars require B or C, and two-wheelers
// require exactly A.
func (p RoutePlanner) CheckLicense(category driver.LicenseCategory, class vehicle.Class) error {
	var compatible bool
	switch class {
	case vehicle.ClassTruck:
		compatible = category == driver.LicenseCategoryC
	case vehicle.ClassCar:
		compatible = category == driver.LicenseCategoryB || category == driver.LicenseCategoryC
	case vehicle.ClassTwoWheeler:
		compatible = category == driver.LicenseCategoryA
	default:
		return class.Validate()
	}

	if !compatible {
		return errs.NewValueIsInvalidErrorWithCause(
			"incompatible license",
			fmt.Errorf("license %s cannot operate a %s vehicle", category, class),
		)
	}
	return nil
}

// CheckZoneHomogeneity validates that every priced shipment on the route
// targets the same geographic zone. The error names every zone found so
// the caller can render the offending mixture.
func (p RoutePlanner) CheckZoneHomogeneity(loads []ShipmentLoad) error {
	seen := make(map[kernel.Zone]struct{})
	for _, load := range loads {
		if load.HasZone {
			seen[load.Zone] = struct{}{}
		}
	}

	if len(seen) <= 1 {
		return nil
	}

	zones := make([]string, 0, len(seen))
	for zone := range seen {
		zones = append(zones, zone.String())
	}
	sort.Strings(zones)
	return errs.NewValueIsInvalidErrorWithCause(
		"route zones",
		fmt.Errorf("shipments span multiple zones %v, a route must stay within one zone", zones),
	)
}

// CheckCapacity validates the summed shipment weight and volume against
// the vehicle's capacities, reporting current vs. max for the violated
// dimension.
func (p RoutePlanner) CheckCapacity(v *vehicle.Vehicle, loads []ShipmentLoad) error {
	totalWeight := decimal.Zero
	totalVolume := decimal.Zero
	for _, load := range loads {
		totalWeight = totalWeight.Add(load.Weight)
		totalVolume = totalVolume.Add(load.Volume)
	}

	if totalWeight.GreaterThan(v.CapacityWeight()) {
		return errs.NewValueIsOutOfRangeError(
			"route weight", totalWeight.String(), "0", v.CapacityWeight().String(),
		)
	}
	if totalVolume.GreaterThan(v.CapacityVolume()) {
		return errs.NewValueIsOutOfRangeError(
			"route volume", totalVolume.String(), "0", v.CapacityVolume().String(),
		)
	}
	return nil
}
