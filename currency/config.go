package currency

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// Config describes a Registry in YAML form:
//
//	include_defaults: true
//	currencies:
//	  - code: BTC
//	    symbol: "₿"
type Config struct {
	// IncludeDefaults seeds the registry with the well known currencies.
	IncludeDefaults bool `yaml:"include_defaults"`

	Currencies []CurrencyConfig `yaml:"currencies"`
}

// CurrencyConfig is a single currency entry of a Config.
type CurrencyConfig struct {
	Code   string `yaml:"code"`
	Symbol string `yaml:"symbol"`
}

// Registry builds a Registry from the config.
func (cfg Config) Registry() (*Registry, error) {
	var currencies []Currency

	if cfg.IncludeDefaults {
		currencies = append(currencies, Defaults()...)
	}

	for _, c := range cfg.Currencies {
		currencies = append(currencies, New(c.Code, c.Symbol))
	}

	if len(currencies) == 0 {
		return nil, fmt.Errorf("%w: no currencies", ErrInvalidConfig)
	}

	return NewRegistry(currencies...)
}

// LoadRegistry decodes a YAML Config from r and builds a Registry from it.
// Unknown fields are rejected.
func LoadRegistry(r io.Reader) (*Registry, error) {
	var cfg Config

	err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&cfg)

	switch {
	case errors.Is(err, io.EOF):
		return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)

	case err != nil:
		return nil, fmt.Errorf("%w: decode yaml: %s", ErrInvalidConfig, err)
	}

	reg, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	return reg, nil
}

// LoadRegistryFile reads a YAML Config from the file at path
// and builds a Registry from it.
func LoadRegistryFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer f.Close()

	reg, err := LoadRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return reg, nil
}
