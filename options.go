package preload

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type config struct {
	cookiePrefix         string
	cookieMaxAge         time.Duration
	fingerprintCacheSize int
	resolver             Resolver
	polyfill             bool
	logger               *slog.Logger
	metrics              *metricSet
}

func defaultConfig() *config {
	return &config{
		cookiePrefix:         DefaultCookiePrefix,
		cookieMaxAge:         DefaultCookieMaxAge,
		fingerprintCacheSize: defaultFingerprintCacheSize,
		polyfill:             true,
		logger:               slog.New(slog.DiscardHandler),
	}
}

// Option configures a Preloader or a standalone Tracker.
type Option func(*config)

// WithCookiePrefix overrides the tracking cookie prefix.
// Empty prefixes are ignored since they would collide with unrelated cookies.
func WithCookiePrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.cookiePrefix = prefix
		}
	}
}

// WithCookieMaxAge sets how long a tracking cookie lives after being set.
func WithCookieMaxAge(d time.Duration) Option {
	if d <= 0 {
		panic("WithCookieMaxAge: duration must be > 0")
	}
	return func(c *config) { c.cookieMaxAge = d }
}

// WithFingerprintCacheSize bounds the number of memoised fingerprints.
func WithFingerprintCacheSize(n int) Option {
	if n <= 0 {
		panic("WithFingerprintCacheSize: size must be > 0")
	}
	return func(c *config) { c.fingerprintCacheSize = n }
}

// WithResolver sets the asset URL resolver used for hrefs and fingerprints.
func WithResolver(r Resolver) Option {
	return func(c *config) { c.resolver = r }
}

// WithPolyfill toggles the footer loadCSS polyfill.
// Disable it only when the page ships its own relpreload polyfill.
func WithPolyfill(enabled bool) Option {
	return func(c *config) { c.polyfill = enabled }
}

// WithLogger supplies a logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics registers decision and cookie-write counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) {
		if reg != nil {
			c.metrics = newMetricSet(reg)
		}
	}
}
