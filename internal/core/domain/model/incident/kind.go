package incident

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Kind classifies an incident reported against a shipment.
// Lost and Damaged are the severe kinds: resolving them escalates the
// shipment to a failed delivery.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	KindDelay
	KindLost
	KindDamaged
	KindTechnical
	KindWrongAddress
	KindRecipientAbsent
	KindReceptionRefused
	KindAccident
	KindOther
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:          "UNKNOWN",
		KindDelay:            "RETARD",
		KindLost:             "PERTE",
		KindDamaged:          "ENDOMMAGEMENT",
		KindTechnical:        "PROBLEME_TECHNIQUE",
		KindWrongAddress:     "ADRESSE_INCORRECTE",
		KindRecipientAbsent:  "DESTINATAIRE_ABSENT",
		KindReceptionRefused: "REFUS_RECEPTION",
		KindAccident:         "ACCIDENT",
		KindOther:            "AUTRE",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindDelay:            "RETARD",
		KindLost:             "PERTE",
		KindDamaged:          "ENDOMMAGEMENT",
		KindTechnical:        "PROBLEME_TECHNIQUE",
		KindWrongAddress:     "ADRESSE_INCORRECTE",
		KindRecipientAbsent:  "DESTINATAIRE_ABSENT",
		KindReceptionRefused: "REFUS_RECEPTION",
		KindAccident:         "ACCIDENT",
		KindOther:            "AUTRE",
	}
}

// KindFromString parses a persisted incident kind code.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"incident kind",
		fmt.Errorf("%q is not a valid incident kind", s),
	)
}

// Validate checks that the Kind is one of the enumerated classes.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"incident kind",
			fmt.Errorf("%d is not a valid incident kind", k),
		)
	}
	return nil
}

// String returns the persisted code of the kind.
// Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsSevere reports whether resolving an incident of this kind forces the
// shipment into a failed delivery.
func (k Kind) IsSevere() bool {
	return k == KindLost || k == KindDamaged
}
