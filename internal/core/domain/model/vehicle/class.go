package vehicle

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Class is the physical category of a vehicle. Each class bounds the
// weight capacity a vehicle of that class may declare.
type Class int

const (
	// ClassUnknown represents an invalid or undefined class.
	ClassUnknown Class = iota

	ClassTwoWheeler
	ClassCar
	ClassTruck
)

func getClassStrings() map[Class]string {
	return map[Class]string{
		ClassUnknown:    "UNKNOWN",
		ClassTwoWheeler: "MOTO",
		ClassCar:        "VOITURE",
		ClassTruck:      "CAMION",
	}
}

func getValidClassStrings() map[Class]string {
	//nolint:exhaustive // ClassUnknown is intentionally excluded as it's invalid
	return map[Class]string{
		ClassTwoWheeler: "MOTO",
		ClassCar:        "VOITURE",
		ClassTruck:      "CAMION",
	}
}

// ClassFromString parses a persisted vehicle class code.
func ClassFromString(s string) (Class, error) {
	for class, str := range getValidClassStrings() {
		if str == s {
			return class, nil
		}
	}
	return ClassUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle class",
		fmt.Errorf("%q is not a valid vehicle class", s),
	)
}

// Validate checks that the Class is one of the enumerated categories.
func (c Class) Validate() error {
	if _, ok := getValidClassStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle class",
			fmt.Errorf("%d is not a valid vehicle class", c),
		)
	}
	return nil
}

// String returns the persisted code of the class.
// Implements fmt.Stringer.
func (c Class) String() string {
	if str, ok := getClassStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// MaxWeightCapacity returns the regulatory upper bound on declared weight
// capacity for the class, and whether such a bound exists. Trucks are
// unbounded.
func (c Class) MaxWeightCapacity() (decimal.Decimal, bool) {
	switch c {
	case ClassTwoWheeler:
		return decimal.NewFromInt(100), true
	case ClassCar:
		return decimal.NewFromInt(500), true
	default:
		return decimal.Decimal{}, false
	}
}
