// Package preload emits <link rel="preload"> resource hints for registered
// scripts and stylesheets and defers non-critical ("lazy") stylesheets until
// after first paint.
//
// Whether a client already has a lazy stylesheet cached is tracked with a
// cookie per resource, named CSS_CACHED_<UPPERCASED NAME>, whose value is a
// fingerprint of the stylesheet URL. A changed URL (for example a new
// revisioned build) changes the fingerprint and the client is treated as not
// having the stylesheet.
//
// # Pipeline
//
// The work is split into explicit stages:
//
//  1. Startup: resources are added to a Registry, either in code or from a
//     YAML manifest, and New freezes it into a Preloader.
//  2. Request: Preloader.Begin evaluates every resource against the request
//     cookies and writes or expires tracking cookies for lazy styles.
//  3. Head: Page.Head, Page.StyleTag and Page.FilterStyleTag render the hints.
//  4. Footer: Page.Footer injects the loadCSS polyfill once, and only when a
//     lazy style is registered.
//
// # Decisions
//
//   - EagerPreload: scripts and non-lazy styles get a plain preload hint.
//   - LazyPreloadPending: no matching cookie; the style is preloaded and
//     swapped to a stylesheet on load, with a <noscript> fallback.
//   - LazyPreloadFresh: the cookie matches; a plain preload hint is emitted.
//
// # Usage
//
//	reg := preload.NewRegistry()
//	reg.MustRegister("app", "scripts/main.js", preload.KindScript, false)
//	reg.MustRegister("main", "styles/main.css", preload.KindStyle, false)
//	reg.MustRegister("fonts", "styles/fonts.css", preload.KindStyle, true)
//
//	p, err := preload.New(reg, preload.WithResolver(resolver), preload.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	r := chi.NewRouter()
//	r.Use(p.Middleware(cookie.New()))
//
// In handlers or templ layouts:
//
//	page := preload.FromContext(r.Context())
//	@page.HeadComponent()
//	@page.FooterComponent()
//
// # Error Handling
//
// Registration errors (ErrEmptyName, ErrDuplicate, ErrLazyScript, ...) are
// returned at startup. Nothing on the request path returns an error: unknown
// names render nothing, resolver failures fall back to the registered path,
// and a nil *Page renders nothing. A missing hint only costs paint time.
package preload
