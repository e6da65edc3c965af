package money

import (
	"github.com/purposeinplay/go-money/currency"
	"github.com/shopspring/decimal"
)

// displayDecimals is the number of digits after the decimal point
// used by String, regardless of the currency.
const displayDecimals = 2

// Money represents a type storing information
// about a monetary amount.
//
// The amount keeps the scale it was created with.
// Example: 1.00 and 1 are numerically equal but have
// a scale of 2 and 0 respectively.
type Money struct {
	// exact decimal value of the amount.
	amount decimal.Decimal

	// currency the amount is expressed in.
	currency currency.Currency
}

// New creates a Money from an amount and a currency.
func New(amount decimal.Decimal, c currency.Currency) Money {
	return Money{
		amount:   amount,
		currency: c,
	}
}

// NewFromSubunits creates a Money from a value stored in the
// smallest denomination of the currency.
// The amount is calculated as value * 10^-decimals.
// Example: for 97.23 dollars, value is 9723 and decimals is 2.
func NewFromSubunits(value int64, decimals uint, c currency.Currency) Money {
	return New(decimal.New(value, -int32(decimals)), c)
}

// Amount returns the amount as it was stored.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of the amount.
func (m Money) Currency() currency.Currency {
	return m.currency
}

// IsZero returns true if the amount is 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the amount is < 0.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equal returns true if m and other share the currency
// and their amounts are numerically equal.
// The scale is ignored: 1.00 USD equals 1 USD.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Add returns m + other in the currency of m.
func (m Money) Add(other Money) (Money, error) {
	if err := ensureSameCurrency(m, other); err != nil {
		return Money{}, err
	}

	return New(m.amount.Add(other.amount), m.currency), nil
}

// Subtract returns m - other in the currency of m.
// The result may be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := ensureSameCurrency(m, other); err != nil {
		return Money{}, err
	}

	return New(m.amount.Sub(other.amount), m.currency), nil
}

// MultiplyScalar returns m * k in the currency of m.
// The scale of the result is the sum of the operand scales,
// no rounding is applied.
func (m Money) MultiplyScalar(k decimal.Decimal) Money {
	return New(m.amount.Mul(k), m.currency)
}

// Multiply returns m * other in the currency of m.
//
// ! The product of two monetary amounts has no financial meaning
// of its own, prefer MultiplyScalar unless the amounts are known
// to be used as plain quantities.
// The scale of the result is the sum of the operand scales:
// 2.00 * 3.00 = 6.0000.
func (m Money) Multiply(other Money) (Money, error) {
	if err := ensureSameCurrency(m, other); err != nil {
		return Money{}, err
	}

	return New(m.amount.Mul(other.amount), m.currency), nil
}

// Sum adds up the given amounts, which must share a currency.
func Sum(first Money, rest ...Money) (Money, error) {
	total := first

	for _, m := range rest {
		var err error

		total, err = total.Add(m)
		if err != nil {
			return Money{}, err
		}
	}

	return total, nil
}

// String renders the amount as "<symbol> <amount>" with
// the amount formatted to exactly 2 decimals, eg. "$ 123.45".
// The currency's own subdivision is not taken into account:
// 5000 JPY renders as "¥ 5000.00".
func (m Money) String() string {
	return m.currency.Symbol() + " " + m.amount.StringFixed(displayDecimals)
}

// ensureSameCurrency returns a *CurrencyMismatchError
// if a and b have different currencies.
func ensureSameCurrency(a, b Money) error {
	if a.currency != b.currency {
		return &CurrencyMismatchError{
			Expected: a.currency,
			Actual:   b.currency,
		}
	}

	return nil
}
