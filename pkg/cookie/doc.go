// Package cookie provides a small HTTP cookie manager and a request-scoped
// cookie jar.
//
// The `Manager` type wraps net/http cookies with a set of default attributes
// (path, domain, secure, http-only, same-site) applied to every write.
// `Manager.Jar` binds a manager to one request/response pair and exposes the
// Get/Set/Expire contract expected by the preload tracker.
//
// # Usage
//
//	import "github.com/dmitrymomot/preload/pkg/cookie"
//
//	man := cookie.New(cookie.WithSecure(true))
//
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    jar := man.Jar(w, r)
//	    if _, ok := jar.Get("CSS_CACHED_MAIN"); !ok {
//	        jar.Set("CSS_CACHED_MAIN", "9f86d081884c7d65", 30*24*time.Hour)
//	    }
//	})
//
// # Jar semantics
//
// A jar remembers its own writes. After Set the new value is returned by Get,
// after Expire the cookie reads as missing, even though the request still
// carries the old value. Writes that fail cookie validation (for example a
// name with separator characters) are dropped silently and leave the jar
// unchanged.
//
// # Configuration
//
// The `Config` struct allows the manager to be constructed from environment
// variables via github.com/caarlos0/env.
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	man := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// `ErrCookieNotFound` is returned by Get for missing cookies and
// `ErrInvalidCookie` by Set for cookies net/http refuses to serialise.
package cookie
