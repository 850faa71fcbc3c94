package preload

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmitrymomot/preload/pkg/logger"
)

const (
	DefaultCookiePrefix = "CSS_CACHED_"
	DefaultCookieMaxAge = 30 * 24 * time.Hour

	defaultFingerprintCacheSize = 256
)

// Decision is the outcome of evaluating a resource against the client cookie state.
type Decision int

const (
	// EagerPreload is used for scripts and non-lazy styles.
	EagerPreload Decision = iota + 1
	// LazyPreloadPending means the client has not cached the current stylesheet yet.
	LazyPreloadPending
	// LazyPreloadFresh means the client cookie matches the current stylesheet fingerprint.
	LazyPreloadFresh
)

func (d Decision) String() string {
	switch d {
	case EagerPreload:
		return "eager"
	case LazyPreloadPending:
		return "lazy_pending"
	case LazyPreloadFresh:
		return "lazy_fresh"
	default:
		return "unknown"
	}
}

// CookieJar is the per-request view of the client cookies.
// Implementations must reflect their own writes to later Get calls.
type CookieJar interface {
	Get(name string) (string, bool)
	Set(name, value string, maxAge time.Duration)
	Expire(name string)
}

// Resolver maps a registered path to the URL served to the browser.
type Resolver interface {
	Resolve(path string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(path string) (string, error)

// Resolve calls f(path).
func (f ResolverFunc) Resolve(path string) (string, error) { return f(path) }

// CookieName returns the name of the cache-tracking cookie for a resource,
// using the default prefix.
func CookieName(name string) string {
	return DefaultCookiePrefix + strings.ToUpper(name)
}

// validCookieName applies the token rule net/http enforces when writing cookies.
func validCookieName(name string) bool {
	return (&http.Cookie{Name: name, Value: "0"}).Valid() == nil
}

// Fingerprint returns a short deterministic hash of path.
// It detects asset changes between visits and is not a security boundary.
func Fingerprint(path string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(path))
}

// Tracker decides whether a lazy style is already cached by the client.
type Tracker struct {
	prefix   string
	maxAge   time.Duration
	resolver Resolver
	cache    *lru.Cache[string, string]
	logger   *slog.Logger
	metrics  *metricSet
}

// NewTracker builds a standalone tracker. Only tracker-related options apply.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return newTracker(cfg)
}

func newTracker(cfg *config) *Tracker {
	size := cfg.fingerprintCacheSize
	if size <= 0 {
		size = defaultFingerprintCacheSize
	}
	// lru.New only fails for non-positive sizes.
	cache, _ := lru.New[string, string](size)

	return &Tracker{
		prefix:   cfg.cookiePrefix,
		maxAge:   cfg.cookieMaxAge,
		resolver: cfg.resolver,
		cache:    cache,
		logger:   cfg.logger,
		metrics:  cfg.metrics,
	}
}

// CookieName returns the tracking cookie name for a resource name.
func (t *Tracker) CookieName(name string) string {
	return t.prefix + strings.ToUpper(name)
}

// Fingerprint returns the memoised fingerprint of an already resolved URL.
func (t *Tracker) Fingerprint(url string) string {
	if fp, ok := t.cache.Get(url); ok {
		return fp
	}
	fp := Fingerprint(url)
	t.cache.Add(url, fp)
	return fp
}

// Resolve returns the URL for a registered path.
// Resolver failures degrade to the registered path.
func (t *Tracker) Resolve(path string) string {
	if t.resolver == nil {
		return path
	}
	url, err := t.resolver.Resolve(path)
	if err != nil || url == "" {
		t.logger.Warn("asset path not resolved, using registered path",
			logger.AssetPath(path),
			logger.Error(err),
		)
		return path
	}
	return url
}

// Verdict evaluates entry against the cookie jar.
//
// For lazy styles it also updates the jar: a missing cookie is set to the current
// fingerprint, a stale cookie is expired. Calling it twice for the same entry in one
// request is not idempotent; Page caches the result per request.
func (t *Tracker) Verdict(entry Entry, jar CookieJar) Decision {
	if entry.Kind != KindStyle || !entry.Lazy {
		return t.decide(entry, "", jar)
	}
	return t.decide(entry, t.Resolve(entry.Path), jar)
}

// decide is Verdict with the entry URL already resolved.
func (t *Tracker) decide(entry Entry, url string, jar CookieJar) Decision {
	d := t.verdict(entry, url, jar)
	t.metrics.decision(entry.Kind, d)
	return d
}

func (t *Tracker) verdict(entry Entry, url string, jar CookieJar) Decision {
	if entry.Kind != KindStyle || !entry.Lazy {
		return EagerPreload
	}

	fp := t.Fingerprint(url)
	name := t.CookieName(entry.Name)

	if jar == nil {
		return LazyPreloadPending
	}

	stored, ok := jar.Get(name)
	switch {
	case !ok:
		jar.Set(name, fp, t.maxAge)
		t.metrics.cookieWrite("set")
		t.logger.Debug("tracking cookie set", logger.Resource(entry.Name), logger.Cookie(name))
		return LazyPreloadPending
	case stored != fp:
		jar.Expire(name)
		t.metrics.cookieWrite("expire")
		t.logger.Debug("tracking cookie stale", logger.Resource(entry.Name), logger.Cookie(name))
		return LazyPreloadPending
	default:
		return LazyPreloadFresh
	}
}
