package cookie

import (
	"net/http"
	"sync"
	"time"
)

// Jar is a per-request view over the request cookies and the response.
// Writes are visible to later reads within the same request: a set cookie
// reads back its new value, an expired cookie reads as missing.
type Jar struct {
	manager *Manager
	w       http.ResponseWriter
	r       *http.Request

	mu      sync.Mutex
	written map[string]*string // nil value marks an expired cookie
}

// Get returns the cookie value as currently known for this request.
func (j *Jar) Get(name string) (string, bool) {
	j.mu.Lock()
	v, ok := j.written[name]
	j.mu.Unlock()

	if ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}

	value, err := j.manager.Get(j.r, name)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set writes the cookie to the response. Invalid cookies are dropped and
// leave the jar unchanged.
func (j *Jar) Set(name, value string, maxAge time.Duration) {
	if err := j.manager.Set(j.w, name, value, maxAge); err != nil {
		return
	}

	j.mu.Lock()
	j.written[name] = &value
	j.mu.Unlock()
}

// Expire instructs the client to drop the cookie.
func (j *Jar) Expire(name string) {
	j.manager.Delete(j.w, name)

	j.mu.Lock()
	j.written[name] = nil
	j.mu.Unlock()
}
