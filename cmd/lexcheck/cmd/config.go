package cmd

import (
	"fmt"

	"github.com/dmitrymomot/lexcheck/pkg/config"
	"github.com/dmitrymomot/lexcheck/pkg/httpserver"
	"github.com/dmitrymomot/lexcheck/pkg/logger"
	"github.com/dmitrymomot/lexcheck/pkg/ratelimit"
)

type appConfig struct {
	Env              string `env:"APP_ENV" envDefault:"development"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"lexcheck"`
	LogLevel         string `env:"LOG_LEVEL"`  // overrides the environment default when set
	LogFormat        string `env:"LOG_FORMAT"` // json or text
	MaxBodyBytes     int64  `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	MaxBatchSize     int    `env:"MAX_BATCH_SIZE" envDefault:"1000"`
	BatchConcurrency int    `env:"BATCH_CONCURRENCY" envDefault:"8"`

	HTTP      httpserver.Config
	RateLimit ratelimit.Config
}

func loadConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, err
	}
	switch logger.Format(cfg.LogFormat) {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return appConfig{}, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", logger.FormatJSON, logger.FormatText, cfg.LogFormat)
	}
	return cfg, nil
}

func (c appConfig) loggerOptions() []logger.Option {
	opts := []logger.Option{logger.WithEnvironment(c.Env, c.ServiceName)}
	if c.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(c.LogLevel)))
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return opts
}
