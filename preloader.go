package preload

import (
	"fmt"
	"log/slog"
)

// Preloader binds a frozen registry to a tracker and builds per-request pages.
type Preloader struct {
	registry *Registry
	tracker  *Tracker
	polyfill bool
	logger   *slog.Logger
}

// New returns a Preloader for registry. The registry is frozen: every
// resource must be registered before New is called.
func New(registry *Registry, opts ...Option) (*Preloader, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if !validCookieName(cfg.cookiePrefix + "X") {
		return nil, fmt.Errorf("%w: cookie prefix %q", ErrInvalidName, cfg.cookiePrefix)
	}

	registry.Freeze()

	p := &Preloader{
		registry: registry,
		tracker:  newTracker(cfg),
		polyfill: cfg.polyfill,
		logger:   cfg.logger,
	}

	p.logger.Info("preloader ready",
		slog.Int("scripts", len(registry.List(KindScript))),
		slog.Int("styles", len(registry.List(KindStyle))),
		slog.Bool("lazy", registry.HasLazy()),
	)

	return p, nil
}

// Registry returns the frozen registry the preloader was built with.
func (p *Preloader) Registry() *Registry { return p.registry }

// Tracker returns the tracker used to compute lazy-style decisions.
func (p *Preloader) Tracker() *Tracker { return p.tracker }

// Begin computes the decision for every registered resource against jar and
// returns the page used for tag emission. Lazy-style cookies are written here,
// once per request.
func (p *Preloader) Begin(jar CookieJar) *Page {
	scripts := p.registry.List(KindScript)
	styles := p.registry.List(KindStyle)

	page := &Page{
		preloader: p,
		scripts:   make([]resolved, 0, len(scripts)),
		styles:    make([]resolved, 0, len(styles)),
		index:     make(map[string]resolved, len(scripts)+len(styles)),
		lazy:      p.polyfill && p.registry.HasLazy(),
	}

	for _, e := range scripts {
		page.add(p.resolve(e, jar))
	}
	for _, e := range styles {
		page.add(p.resolve(e, jar))
	}

	return page
}

func (p *Preloader) resolve(e Entry, jar CookieJar) resolved {
	url := p.tracker.Resolve(e.Path)
	return resolved{
		entry:    e,
		href:     url,
		decision: p.tracker.decide(e, url, jar),
	}
}
