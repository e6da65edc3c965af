package currency

import (
	"fmt"
	"sort"
)

// Registry maps currency codes to currencies.
//
// A Registry is immutable once created and
// can be shared between goroutines.
type Registry struct {
	byCode map[string]Currency
}

// NewRegistry creates a Registry holding the given currencies.
// Every currency must have a non empty code and codes must be unique.
func NewRegistry(currencies ...Currency) (*Registry, error) {
	byCode := make(map[string]Currency, len(currencies))

	for _, c := range currencies {
		if c.code == "" {
			return nil, fmt.Errorf(
				"%w: empty code for symbol %q",
				ErrInvalidCurrency,
				c.symbol,
			)
		}

		if _, ok := byCode[c.code]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, c.code)
		}

		byCode[c.code] = c
	}

	return &Registry{byCode: byCode}, nil
}

// MustNewRegistry returns Registry if err is nil and panics otherwise.
func MustNewRegistry(r *Registry, err error) *Registry {
	if err != nil {
		panic(err)
	}

	return r
}

// Defaults returns the well known currencies, sorted by code.
func Defaults() []Currency {
	return []Currency{CNY, EUR, GBP, JPY, USD}
}

// DefaultRegistry returns a Registry holding the well known currencies.
func DefaultRegistry() *Registry {
	return MustNewRegistry(NewRegistry(Defaults()...))
}

// Lookup returns the currency registered under code.
func (r *Registry) Lookup(code string) (Currency, error) {
	c, ok := r.byCode[code]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %s", ErrUnknownCurrency, code)
	}

	return c, nil
}

// Len returns the number of registered currencies.
func (r *Registry) Len() int {
	return len(r.byCode)
}

// Codes returns the registered codes in ascending order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.byCode))

	for code := range r.byCode {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}

// Currencies returns the registered currencies ordered by code.
func (r *Registry) Currencies() []Currency {
	codes := r.Codes()

	currencies := make([]Currency, 0, len(codes))

	for _, code := range codes {
		currencies = append(currencies, r.byCode[code])
	}

	return currencies
}
