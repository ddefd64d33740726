package tariff

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// ServiceClass is the commercial service level a tariff prices.
type ServiceClass int

const (
	// ServiceClassUnknown represents an invalid or undefined service class.
	ServiceClassUnknown ServiceClass = iota

	ServiceClassStandard
	ServiceClassExpress
	ServiceClassInternational
)

func getServiceClassStrings() map[ServiceClass]string {
	return map[ServiceClass]string{
		ServiceClassUnknown:       "UNKNOWN",
		ServiceClassStandard:      "STANDARD",
		ServiceClassExpress:       "EXPRESS",
		ServiceClassInternational: "INTERNATIONAL",
	}
}

func getValidServiceClassStrings() map[ServiceClass]string {
	//nolint:exhaustive // ServiceClassUnknown is intentionally excluded as it's invalid
	return map[ServiceClass]string{
		ServiceClassStandard:      "STANDARD",
		ServiceClassExpress:       "EXPRESS",
		ServiceClassInternational: "INTERNATIONAL",
	}
}

// ServiceClassFromString parses a persisted service class code.
func ServiceClassFromString(s string) (ServiceClass, error) {
	for class, str := range getValidServiceClassStrings() {
		if str == s {
			return class, nil
		}
	}
	return ServiceClassUnknown, errs.NewValueIsInvalidErrorWithCause(
		"service class",
		fmt.Errorf("%q is not a valid service class", s),
	)
}

// Validate checks that the ServiceClass is one of the enumerated levels.
func (c ServiceClass) Validate() error {
	if _, ok := getValidServiceClassStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service class",
			fmt.Errorf("%d is not a valid service class", c),
		)
	}
	return nil
}

// String returns the persisted code of the service class.
// Implements fmt.Stringer.
func (c ServiceClass) String() string {
	if str, ok := getServiceClassStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
