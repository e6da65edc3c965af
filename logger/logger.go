// Package logger builds zap loggers for the tools in this module
// and provides zap fields for currency and money values.
package logger

import (
	"fmt"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a *zap.Logger writing Stackdriver compatible
// structured logs to stdout.
// Debug logging is enabled when development is true,
// otherwise logging starts at InfoLevel.
func New(service string, development bool) (*zap.Logger, error) {
	cfg := zapdriver.NewProductionConfig()
	if development {
		cfg = zapdriver.NewDevelopmentConfig()
	}

	return newLoggerFromConfig(cfg, service)
}

func newLoggerFromConfig(cfg zap.Config, service string) (*zap.Logger, error) {
	cfg.OutputPaths = []string{"stdout"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{
		"service": service,
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return log, nil
}
