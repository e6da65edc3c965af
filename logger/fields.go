package logger

import (
	"github.com/purposeinplay/go-money/currency"
	"github.com/purposeinplay/go-money/money"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Currency returns a field logging c as an object
// with its code and symbol.
func Currency(key string, c currency.Currency) zap.Field {
	return zap.Object(key, currencyMarshaler(c))
}

// Money returns a field logging m as an object.
func Money(key string, m money.Money) zap.Field {
	return zap.Object(key, zapcore.ObjectMarshalerFunc(
		func(enc zapcore.ObjectEncoder) error {
			enc.AddString("amount", m.Amount().String())
			enc.AddString("display", m.String())

			return enc.AddObject("currency", currencyMarshaler(m.Currency()))
		},
	))
}

func currencyMarshaler(c currency.Currency) zapcore.ObjectMarshalerFunc {
	return func(enc zapcore.ObjectEncoder) error {
		enc.AddString("code", c.Code())
		enc.AddString("symbol", c.Symbol())

		return nil
	}
}
