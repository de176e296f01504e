package order

import (
	"errors"
	"net/mail"
	"strings"
	"unicode"

	"pipetgo/internal/pkg/errs"
)

const (
	minContactNameLength  = 2
	maxContactNameLength  = 100
	minPhoneDigits        = 10
	maxPhoneLength        = 20
	maxOrganizationLength = 200
	maxAddressLength      = 500
)

// ClientDetails is the contact and shipping snapshot captured when the order
// is submitted. It is descriptive payload only: the state machine never reads
// it, and later edits to the client's profile do not rewrite past orders.
type ClientDetails struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	Address      string
}

// Validate checks the contact payload shape: a plausible name, a parseable
// email address, and a phone number carrying enough digits.
func (d ClientDetails) Validate() error {
	var issues []error

	name := strings.TrimSpace(d.Name)
	if len(name) < minContactNameLength || len(name) > maxContactNameLength {
		issues = append(issues, errs.NewValueIsOutOfRangeError("clientDetails.name", len(name), minContactNameLength, maxContactNameLength))
	}

	if _, err := mail.ParseAddress(d.Email); err != nil {
		issues = append(issues, errs.NewValueIsInvalidErrorWithCause("clientDetails.email", err))
	}

	if len(d.Phone) > maxPhoneLength {
		issues = append(issues, errs.NewValueIsOutOfRangeError("clientDetails.phone", len(d.Phone), minPhoneDigits, maxPhoneLength))
	} else if digitCount(d.Phone) < minPhoneDigits {
		issues = append(issues, errs.NewValueIsInvalidError("clientDetails.phone"))
	}

	if len(d.Organization) > maxOrganizationLength {
		issues = append(issues, errs.NewValueIsOutOfRangeError("clientDetails.organization", len(d.Organization), 0, maxOrganizationLength))
	}

	if len(d.Address) > maxAddressLength {
		issues = append(issues, errs.NewValueIsOutOfRangeError("clientDetails.address", len(d.Address), 0, maxAddressLength))
	}

	return errors.Join(issues...)
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
