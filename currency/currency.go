package currency

import (
	"encoding/json"
	"fmt"
)

var (
	// ensure Currency implements json marshaller and unmarshaler interface.
	_ json.Marshaler   = Currency{}
	_ json.Unmarshaler = (*Currency)(nil)
)

// Well known currencies.
//
// CNY shares the ¥ symbol with JPY; the two are still
// distinct since their codes differ.
var (
	USD = New("USD", "$")
	EUR = New("EUR", "€")
	JPY = New("JPY", "¥")
	CNY = New("CNY", "¥")
	GBP = New("GBP", "£")
)

// Currency represents a monetary unit.
//
// Two currencies are equal when both their code and symbol
// are equal, so a Currency can be compared with == and used
// as a map key.
type Currency struct {
	// shorthand for the currency, eg. USD.
	code string

	// display glyph, eg. $.
	symbol string
}

// New creates a Currency from a code and a symbol.
// The values are stored as given, no validation is performed.
func New(code, symbol string) Currency {
	return Currency{
		code:   code,
		symbol: symbol,
	}
}

// Code returns the shorthand of the currency.
func (c Currency) Code() string {
	return c.code
}

// Symbol returns the display glyph of the currency.
func (c Currency) Symbol() string {
	return c.symbol
}

// IsZero returns true for the zero Currency value.
func (c Currency) IsZero() bool {
	return c == Currency{}
}

// String renders the currency as "<symbol> (<code>)", eg. "$ (USD)".
func (c Currency) String() string {
	return fmt.Sprintf("%s (%s)", c.symbol, c.code)
}

type jsonCurrency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// MarshalJSON implements the json.Marshaler interface.
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonCurrency{
		Code:   c.code,
		Symbol: c.symbol,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (c *Currency) UnmarshalJSON(data []byte) error {
	var v jsonCurrency

	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*c = New(v.Code, v.Symbol)

	return nil
}
