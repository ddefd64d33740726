package driver

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// LicenseCategory is the class of vehicle a driver is licensed to operate.
type LicenseCategory int

const (
	// LicenseCategoryUnknown represents an invalid or undefined category.
	LicenseCategoryUnknown LicenseCategory = iota

	// LicenseCategoryA licenses two-wheelers only.
	LicenseCategoryA
	// LicenseCategoryB licenses cars.
	LicenseCategoryB
	// LicenseCategoryC licenses trucks, and covers cars as well.
	LicenseCategoryC
)

func getLicenseCategoryStrings() map[LicenseCategory]string {
	return map[LicenseCategory]string{
		LicenseCategoryUnknown: "UNKNOWN",
		LicenseCategoryA:       "A",
		LicenseCategoryB:       "B",
		LicenseCategoryC:       "C",
	}
}

func getValidLicenseCategoryStrings() map[LicenseCategory]string {
	//nolint:exhaustive // LicenseCategoryUnknown is intentionally excluded as it's invalid
	return map[LicenseCategory]string{
		LicenseCategoryA: "A",
		LicenseCategoryB: "B",
		LicenseCategoryC: "C",
	}
}

// LicenseCategoryFromString parses a persisted license category code.
func LicenseCategoryFromString(s string) (LicenseCategory, error) {
	for category, str := range getValidLicenseCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return LicenseCategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"license category",
		fmt.Errorf("%q is not a valid license category", s),
	)
}

// Validate checks that the LicenseCategory is one of the enumerated classes.
func (c LicenseCategory) Validate() error {
	if _, ok := getValidLicenseCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"license category",
			fmt.Errorf("%d is not a valid license category", c),
		)
	}
	return nil
}

// String returns the persisted code of the category.
// Implements fmt.Stringer.
func (c LicenseCategory) String() string {
	if str, ok := getLicenseCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
