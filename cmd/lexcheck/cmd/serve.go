package cmd

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/lexcheck/pkg/checkapi"
	"github.com/dmitrymomot/lexcheck/pkg/httpserver"
	"github.com/dmitrymomot/lexcheck/pkg/logger"
	"github.com/dmitrymomot/lexcheck/pkg/ratelimit"
)

func newServeCmd() *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validators over HTTP",
		Long: `serve exposes the validators as a JSON API:

  GET  /validators                 list validator names
  POST /validators/{name}/check    check {"text": "..."}
  POST /check                      check {"cases": [...]}
  GET  /health                     liveness probe
  GET  /metrics                    Prometheus metrics

Configuration is read from the environment and an optional .env file.
Set RATE_LIMIT_CAPACITY to limit the validator routes per client IP.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return usageError(err)
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log := logger.New(append(cfg.loggerOptions(),
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(checkapi.LogRequestID),
			)...)
			slog.SetDefault(log)

			reg := prometheus.NewRegistry()
			reg.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)

			apiOpts := []checkapi.Option{
				checkapi.WithLogger(log),
				checkapi.WithRegistry(reg),
				checkapi.WithMaxBodyBytes(cfg.MaxBodyBytes),
				checkapi.WithMaxBatchSize(cfg.MaxBatchSize),
				checkapi.WithBatchConcurrency(cfg.BatchConcurrency),
			}
			if cfg.RateLimit.Enabled() {
				store := ratelimit.NewMemoryStore()
				defer store.Close()

				bucket, err := ratelimit.NewBucket(store, cfg.RateLimit)
				if err != nil {
					return usageError(err)
				}
				apiOpts = append(apiOpts, checkapi.WithRateLimiter(bucket))
			}
			h := checkapi.New(apiOpts...)

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), h.Routes())
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return c
}
