package kernel

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Zone represents a coarse geographic region. Routes only group shipments
// whose destinations share a single zone, which keeps a delivery run
// geographically homogeneous.
type Zone int

const (
	// ZoneUnknown represents an invalid or undefined zone.
	// This value (0) helps catch uninitialized Zone values.
	ZoneUnknown Zone = iota

	ZoneNorth
	ZoneSouth
	ZoneEast
	ZoneWest
	ZoneCentre
)

// getZoneStrings returns the persisted codes for every zone, including
// the invalid one.
func getZoneStrings() map[Zone]string {
	return map[Zone]string{
		ZoneUnknown: "UNKNOWN",
		ZoneNorth:   "NORD",
		ZoneSouth:   "SUD",
		ZoneEast:    "EST",
		ZoneWest:    "OUEST",
		ZoneCentre:  "CENTRE",
	}
}

// getValidZoneStrings returns only the zones that may appear on a destination.
func getValidZoneStrings() map[Zone]string {
	//nolint:exhaustive // ZoneUnknown is intentionally excluded as it's invalid
	return map[Zone]string{
		ZoneNorth:  "NORD",
		ZoneSouth:  "SUD",
		ZoneEast:   "EST",
		ZoneWest:   "OUEST",
		ZoneCentre: "CENTRE",
	}
}

// ZoneFromString parses a persisted zone code back into a Zone.
// Returns an error for unrecognized codes.
func ZoneFromString(s string) (Zone, error) {
	for zone, str := range getValidZoneStrings() {
		if str == s {
			return zone, nil
		}
	}
	return ZoneUnknown, errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%q is not a valid zone", s))
}

// Validate checks that the Zone is one of the enumerated regions.
func (z Zone) Validate() error {
	if _, ok := getValidZoneStrings()[z]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%d is not a valid zone", z))
	}
	return nil
}

// String returns the persisted code of the zone, "UNKNOWN" for invalid values.
// Implements fmt.Stringer.
func (z Zone) String() string {
	if str, ok := getZoneStrings()[z]; ok {
		return str
	}
	return "UNKNOWN"
}
