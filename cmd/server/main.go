package main

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/preload"
	"github.com/dmitrymomot/preload/pkg/assets"
	"github.com/dmitrymomot/preload/pkg/config"
	"github.com/dmitrymomot/preload/pkg/cookie"
	"github.com/dmitrymomot/preload/pkg/httpserver"
	"github.com/dmitrymomot/preload/pkg/logger"
	"github.com/dmitrymomot/preload/pkg/requestid"
)

//go:embed public
var public embed.FS

//go:embed preload.yaml
var defaultManifest []byte

var errNoResources = errors.New("server.no_resources")

type appConfig struct {
	Logger  logger.Config
	Preload preload.Config
	Cookie  cookie.Config
	Assets  assets.Config
	HTTP    httpserver.Config
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Logger, logger.WithContextExtractors(requestid.Extractor))
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	handler, err := newHandler(cfg, log)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, handler)
}

// newHandler wires the preload pipeline into a chi router.
func newHandler(cfg appConfig, log *slog.Logger) (http.Handler, error) {
	resolver, err := assets.NewFromConfig(cfg.Assets)
	if err != nil {
		return nil, err
	}

	registry := preload.NewRegistry()
	if cfg.Preload.Manifest == "" {
		if err := registry.LoadManifest(bytes.NewReader(defaultManifest)); err != nil {
			return nil, err
		}
	}

	metrics := prometheus.NewRegistry()
	metrics.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	p, err := preload.NewFromConfig(cfg.Preload, registry,
		preload.WithResolver(resolver),
		preload.WithLogger(log.With(logger.Component("preload"))),
		preload.WithMetrics(metrics),
	)
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(public, "public")
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)
	r.Get("/health", httpserver.HealthCheckHandler(log))
	r.Get("/ready", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if registry.Len() == 0 {
			return errNoResources
		}
		return nil
	}))
	r.Handle("/metrics", promhttp.HandlerFor(metrics, promhttp.HandlerOpts{}))
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(static)))

	r.Group(func(r chi.Router) {
		r.Use(p.Middleware(cookie.NewFromConfig(cfg.Cookie)))
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			page := preload.FromContext(r.Context())
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := layout("Preload demo", page, homeBody(page)).Render(r.Context(), w); err != nil {
				log.ErrorContext(r.Context(), "render page", logger.Error(err))
			}
		})
	})

	return r, nil
}
