package money_test

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/pkg/errors"
	"github.com/purposeinplay/go-money/currency"
	"github.com/purposeinplay/go-money/money"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("Marshal", func(t *testing.T) {
		t.Parallel()

		tests := map[string]struct {
			money money.Money
			want  string
		}{
			"KeepsScale": {
				money.NewFromSubunits(100, 2, currency.USD),
				`{"amount":"1.00","currency":{"code":"USD","symbol":"$"}}`,
			},
			"ScaleOfFour": {
				money.NewFromSubunits(60000, 4, currency.USD),
				`{"amount":"6.0000","currency":{"code":"USD","symbol":"$"}}`,
			},
			"NoDecimals": {
				money.NewFromSubunits(5000, 0, currency.JPY),
				`{"amount":"5000","currency":{"code":"JPY","symbol":"¥"}}`,
			},
			"Negative": {
				money.NewFromSubunits(-500, 2, currency.GBP),
				`{"amount":"-5.00","currency":{"code":"GBP","symbol":"£"}}`,
			},
		}

		for name, test := range tests {
			test := test

			t.Run(name, func(t *testing.T) {
				t.Parallel()

				i := is.New(t)

				b, err := json.Marshal(test.money)
				i.NoErr(err)

				i.Equal(test.want, string(b))
			})
		}
	})

	t.Run("Unmarshal", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		var m money.Money

		err := json.Unmarshal(
			[]byte(`{"amount":"6.0000","currency":{"code":"USD","symbol":"$"}}`),
			&m,
		)
		i.NoErr(err)

		i.Equal(currency.USD, m.Currency())
		i.Equal(int32(-4), m.Amount().Exponent())
		i.True(m.Equal(money.NewFromSubunits(6, 0, currency.USD)))
	})

	t.Run("MissingCurrency", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		var m money.Money

		err := json.Unmarshal([]byte(`{"amount":"1.00"}`), &m)

		i.True(errors.Is(err, money.ErrInvalidValue))
		i.Equal("invalid value: missing currency", err.Error())
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		var m money.Money

		err := json.Unmarshal(
			[]byte(`{"amount":"ten","currency":{"code":"USD","symbol":"$"}}`),
			&m,
		)

		i.True(errors.Is(err, money.ErrInvalidValue))
		i.Equal(`invalid value: amount "ten"`, err.Error())
	})
}
