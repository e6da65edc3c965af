package currency

import (
	"errors"
)

var (
	// ErrInvalidCurrency is returned when a currency without
	// a code is given to a Registry.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrDuplicateCode is returned when two currencies given
	// to a Registry share the same code.
	ErrDuplicateCode = errors.New("duplicate currency code")

	// ErrUnknownCurrency is returned when a code is not registered.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrInvalidConfig is returned when a registry config
	// document cannot be used.
	ErrInvalidConfig = errors.New("invalid config")
)
