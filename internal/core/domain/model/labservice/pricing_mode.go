package labservice

import (
	"fmt"

	"pipetgo/internal/pkg/errs"
)

// PricingMode decides how an order against a service gets its price.
//
// The three modes drive the three creation paths of the order state machine:
//
//	FIXED          -> order starts PENDING at the catalog price
//	QUOTE_REQUIRED -> order starts QUOTE_REQUESTED, price comes from the lab
//	HYBRID         -> the client chooses either path at creation time
type PricingMode int

const (
	// PricingModeUnknown represents an invalid or undefined pricing mode.
	PricingModeUnknown PricingMode = iota

	// PricingModeFixed means orders book instantly at the catalog price.
	PricingModeFixed

	// PricingModeQuoteRequired means every order needs a custom quote from
	// the lab before work can be scheduled.
	PricingModeQuoteRequired

	// PricingModeHybrid means the catalog price is a reference: the client
	// either accepts it for instant booking or requests a custom quote.
	PricingModeHybrid
)

func getPricingModeStrings() map[PricingMode]string {
	return map[PricingMode]string{
		PricingModeUnknown:       "UNKNOWN",
		PricingModeFixed:         "FIXED",
		PricingModeQuoteRequired: "QUOTE_REQUIRED",
		PricingModeHybrid:        "HYBRID",
	}
}

// PricingModeFromString parses a wire-format mode name ("FIXED",
// "QUOTE_REQUIRED", "HYBRID") into a PricingMode.
func PricingModeFromString(s string) (PricingMode, error) {
	for mode, name := range getPricingModeStrings() {
		if mode != PricingModeUnknown && name == s {
			return mode, nil
		}
	}
	return PricingModeUnknown, errs.NewValueIsInvalidErrorWithCause("pricingMode",
		fmt.Errorf("%q is not a valid pricing mode", s))
}

// String returns the wire-format name of the pricing mode.
func (m PricingMode) String() string {
	if s, ok := getPricingModeStrings()[m]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks the PricingMode is one of the defined values.
func (m PricingMode) Validate() error {
	if m != PricingModeFixed && m != PricingModeQuoteRequired && m != PricingModeHybrid {
		return errs.NewValueIsInvalidErrorWithCause("pricingMode",
			fmt.Errorf("%d is not a valid pricing mode", m))
	}
	return nil
}

// RequiresCatalogPrice reports whether services in this mode must carry a
// pricePerUnit. FIXED and HYBRID need one; QUOTE_REQUIRED must not, since its
// price always comes from the lab's quote.
func (m PricingMode) RequiresCatalogPrice() bool {
	return m == PricingModeFixed || m == PricingModeHybrid
}
