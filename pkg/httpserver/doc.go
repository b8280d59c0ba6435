// Package httpserver runs an http.Handler with configurable timeouts,
// lifecycle hooks and graceful shutdown.
//
// Run listens first, so an unusable address is reported immediately as
// ErrStart, then serves until the context is cancelled or SIGINT/SIGTERM
// arrives. Shutdown waits for in-flight requests up to the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
