// Package money provides fixed-point monetary amounts with a 2-digit scale.
// Amounts are stored as int64 cents; decimal parsing and formatting go through
// shopspring/decimal so balance arithmetic never touches binary floating point.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a string cannot be parsed as a decimal amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTooManyDecimals is returned when an amount carries more than 2 fractional digits.
	ErrTooManyDecimals = errors.New("amount has more than 2 decimal places")

	// ErrAmountNotPositive is returned when an operation amount is zero or negative.
	ErrAmountNotPositive = errors.New("amount must be positive")
)

// Amount is a monetary amount in cents.
type Amount int64

// Parse converts a decimal string such as "150.00" into an Amount.
// At most 2 fractional digits are accepted.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("%w: %q", ErrTooManyDecimals, s)
	}
	if !cents.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAmount, s)
	}
	return Amount(cents.IntPart()), nil
}

// ParsePositive is Parse restricted to strictly positive amounts.
// Every ledger operation amount goes through this.
func ParsePositive(s string) (Amount, error) {
	a, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if a <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrAmountNotPositive, s)
	}
	return a, nil
}

// Decimal returns the amount as a decimal with exponent -2.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// String renders the amount with exactly 2 fractional digits, e.g. "150.00".
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// MarshalJSON renders the amount as a decimal string, matching the wire
// representation of a DECIMAL(10,2) column.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted decimal string.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
