package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount in paisa (1/100 of a rupee), stored as a signed 64-bit
// integer. Balances and stakes never touch floating point; decimal is used
// only to parse and format display-unit amounts at the API boundary.
type Money int64

const paisaPerRupee = 100

var ErrPrecision = errors.New("amount has sub-paisa precision")

func FromPaisa(p int64) Money { return Money(p) }

// FromRupees converts a display-unit amount to paisa. Amounts finer than one
// paisa are rejected rather than rounded.
func FromRupees(d decimal.Decimal) (Money, error) {
	p := d.Mul(decimal.NewFromInt(paisaPerRupee))
	if !p.IsInteger() {
		return 0, ErrPrecision
	}
	if !p.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount out of range: %s", d)
	}
	return Money(p.IntPart()), nil
}

func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromRupees(d)
}

func (m Money) Paisa() int64 { return int64(m) }

func (m Money) Rupees() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) String() string {
	return m.Rupees().StringFixed(2)
}

func (m Money) Add(o Money) Money { return m + o }
func (m Money) Sub(o Money) Money { return m - o }

func (m Money) IsNegative() bool { return m < 0 }
func (m Money) IsPositive() bool { return m > 0 }
func (m Money) IsZero() bool     { return m == 0 }

// ApplyMultiplier computes a winning payout for odds stored as an integer
// scaled by 100 (195 means 1.95x). The division floors, so fractional paisa
// stay with the house.
func (m Money) ApplyMultiplier(mult int64) Money {
	return Money(int64(m) * mult / 100)
}

// Percent takes a rate scaled by 100 (500 means 5%) and floors the result.
// Used for commission accrual.
func (m Money) Percent(rate int64) Money {
	return Money(int64(m) * rate / 10000)
}
