package preload

import (
	"net/http"

	"github.com/dmitrymomot/preload/pkg/cookie"
)

// Middleware begins a page for every request, using cm for the tracking
// cookies, and stores it in the request context. A nil cm uses cookie defaults.
//
//	r := chi.NewRouter()
//	r.Use(preloader.Middleware(cookie.New()))
func (p *Preloader) Middleware(cm *cookie.Manager) func(http.Handler) http.Handler {
	if cm == nil {
		cm = cookie.New()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page := p.Begin(cm.Jar(w, r))
			next.ServeHTTP(w, r.WithContext(WithPage(r.Context(), page)))
		})
	}
}
