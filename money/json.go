package money

import (
	"encoding/json"
	"fmt"

	"github.com/purposeinplay/go-money/currency"
	"github.com/shopspring/decimal"
)

var (
	// ensure Money implements json marshaller and unmarshaler interface.
	_ json.Marshaler   = Money{}
	_ json.Unmarshaler = (*Money)(nil)
)

type jsonMoney struct {
	Amount   string             `json:"amount"`
	Currency *currency.Currency `json:"currency"`
}

// MarshalJSON implements the json.Marshaler interface.
// The amount is encoded as a string keeping its scale,
// eg. {"amount":"1.00","currency":{"code":"USD","symbol":"$"}}.
func (m Money) MarshalJSON() ([]byte, error) {
	c := m.currency

	return json.Marshal(jsonMoney{
		Amount:   scaledString(m.amount),
		Currency: &c,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v jsonMoney

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	if v.Currency == nil {
		return fmt.Errorf("%w: missing currency", ErrInvalidValue)
	}

	amount, err := decimal.NewFromString(v.Amount)
	if err != nil {
		return fmt.Errorf("%w: amount %q", ErrInvalidValue, v.Amount)
	}

	*m = New(amount, *v.Currency)

	return nil
}

// scaledString formats d with as many decimals as its scale.
func scaledString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}

	return d.String()
}
