package kernel

import (
	"fmt"

	"pipetgo/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxPrice is the upper bound for any price in the marketplace, in the
// platform currency.
var MaxPrice = decimal.NewFromInt(1_000_000)

// Money is a value object for monetary amounts: catalog prices and quoted
// prices. It wraps a decimal to avoid float rounding on money. Amounts must
// be strictly positive and must not exceed MaxPrice; a zero or negative price
// is never a legal quote.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(1200))
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(price.String()) // "1200"
type Money struct {
	amount decimal.Decimal
	isSet  bool
}

// NewMoney creates a Money value from a decimal amount.
// Returns a range error if the amount is not positive or exceeds MaxPrice.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, errs.NewValueIsOutOfRangeError("price", amount.String(), "0 (exclusive)", MaxPrice.String())
	}
	if amount.GreaterThan(MaxPrice) {
		return Money{}, errs.NewValueIsOutOfRangeError("price", amount.String(), "0 (exclusive)", MaxPrice.String())
	}
	return Money{amount: amount, isSet: true}, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount, as submitted
// in API payloads.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted as a plain decimal string.
func (m Money) String() string {
	return m.amount.String()
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks the Money was created through a constructor.
func (m Money) Validate() error {
	if !m.isSet {
		return errs.NewValueIsRequiredErrorWithCause("price",
			fmt.Errorf("Money must be created via NewMoney or NewMoneyFromFloat"))
	}
	return nil
}
