package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Manager writes plain cookies with a shared set of default attributes.
type Manager struct {
	defaults Options
}

// New returns a Manager writing cookies with Path "/", HttpOnly and
// SameSite=Lax unless overridden by opts.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		defaults: applyOptions(defaults, opts),
	}
}

// Set writes a cookie that expires after maxAge.
// A non-positive maxAge writes a session cookie.
func (m *Manager) Set(w http.ResponseWriter, name, value string, maxAge time.Duration, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if maxAge > 0 {
		c.MaxAge = int(maxAge / time.Second)
		// Expires is kept for clients that ignore Max-Age.
		c.Expires = time.Now().Add(maxAge).UTC()
	}

	if err := c.Valid(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}

	http.SetCookie(w, c)
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete instructs the client to drop the cookie immediately.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	c := &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	}
	http.SetCookie(w, c)
}

// Jar returns a request-scoped cookie view bound to w and r.
func (m *Manager) Jar(w http.ResponseWriter, r *http.Request) *Jar {
	return &Jar{
		manager: m,
		w:       w,
		r:       r,
		written: make(map[string]*string),
	}
}
