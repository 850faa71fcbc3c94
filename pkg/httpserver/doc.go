// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run listens on the configured address and blocks until the context is
// cancelled, SIGINT/SIGTERM arrives or the listener fails, then shuts down
// within the configured timeout. Errors wrap ErrStart or ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness (no checks) and readiness (with checks)
// probes.
package httpserver
