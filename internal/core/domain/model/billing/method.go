package billing

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Method is the means by which a payment was made.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	MethodCash
	MethodCheque
	MethodBankTransfer
	MethodCard
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:      "UNKNOWN",
		MethodCash:         "ESPECES",
		MethodCheque:       "CHEQUE",
		MethodBankTransfer: "VIREMENT",
		MethodCard:         "CARTE",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodCash:         "ESPECES",
		MethodCheque:       "CHEQUE",
		MethodBankTransfer: "VIREMENT",
		MethodCard:         "CARTE",
	}
}

// MethodFromString parses a persisted payment method code.
func MethodFromString(s string) (Method, error) {
	for method, str := range getValidMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks that the Method is one of the enumerated means.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the persisted code of the method.
// Implements fmt.Stringer.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}
