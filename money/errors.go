package money

import (
	"errors"
	"fmt"

	"github.com/purposeinplay/go-money/currency"
)

var (
	// ErrInvalidValue is returned when an encoded Money
	// cannot be decoded.
	ErrInvalidValue = errors.New("invalid value")

	// ErrCurrencyMismatch is returned when an operation is attempted
	// between two Money values with different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// CurrencyMismatchError carries the currencies of the operands
// of a failed operation. It unwraps to ErrCurrencyMismatch.
type CurrencyMismatchError struct {
	Expected currency.Currency
	Actual   currency.Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf(
		"Currency mismatch: %s vs %s",
		e.Expected.Code(),
		e.Actual.Code(),
	)
}

// Unwrap returns ErrCurrencyMismatch.
func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}
