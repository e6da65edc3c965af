// Command currencies prints the currencies of a registry together
// with the way a zero amount of each one is displayed.
//
// Usage:
//
//	currencies [-config currencies.yaml] [-dev]
//
// Without -config the well known currencies are listed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/purposeinplay/go-money/currency"
	"github.com/purposeinplay/go-money/logger"
	"github.com/purposeinplay/go-money/money"
	"go.uber.org/zap"
)

const service = "currencies"

func main() {
	fs := flag.NewFlagSet(service, flag.ExitOnError)

	configPath := fs.String("config", "", "path to a YAML registry config")
	development := fs.Bool("dev", false, "enable development logging")

	_ = fs.Parse(os.Args[1:])

	log, err := logger.New(service, *development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "new logger: %s\n", err)
		os.Exit(1)
	}

	defer func() { _ = log.Sync() }()

	if err := run(*configPath, os.Stdout, log); err != nil {
		log.Error("list currencies", zap.Error(err))

		_ = log.Sync()

		os.Exit(1)
	}
}

func run(configPath string, out io.Writer, log *zap.Logger) error {
	reg := currency.DefaultRegistry()

	if configPath != "" {
		var err error

		reg, err = currency.LoadRegistryFile(configPath)
		if err != nil {
			return fmt.Errorf("load registry: %w", err)
		}
	}

	log.Debug(
		"registry loaded",
		zap.String("config", configPath),
		zap.Int("currencies", reg.Len()),
	)

	w := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)

	for _, c := range reg.Currencies() {
		zero := money.NewFromSubunits(0, 0, c)

		log.Debug("currency", logger.Currency("currency", c), logger.Money("zero", zero))

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", c.Code(), c, zero); err != nil {
			return fmt.Errorf("write %s: %w", c.Code(), err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}
