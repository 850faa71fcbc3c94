package preload

import (
	"fmt"
	"strings"
	"sync"
)

// Kind identifies the type of resource a preload hint is emitted for.
type Kind int

const (
	KindScript Kind = iota + 1
	KindStyle
)

// String returns the value used for the "as" attribute of a preload hint.
func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Entry is a single registered resource.
type Entry struct {
	Name string
	Path string
	Kind Kind
	Lazy bool
}

// Registry is an ordered set of resources keyed by name.
// It is populated at startup and becomes read-only once frozen.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
	frozen  bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register adds a resource to the registry.
// Any name can be registered only once, regardless of kind.
// Lazy styles are tracked by a cookie named after them, so their names must
// form a valid cookie name once upper-cased and prefixed.
func (r *Registry) Register(name, path string, kind Kind, lazy bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: %q", ErrEmptyPath, name)
	}
	switch kind {
	case KindScript:
		if lazy {
			return fmt.Errorf("%w: %q", ErrLazyScript, name)
		}
	case KindStyle:
		if lazy && !validCookieName(CookieName(name)) {
			return fmt.Errorf("%w: lazy style %q cannot be tracked by cookie %q", ErrInvalidName, name, CookieName(name))
		}
	default:
		return fmt.Errorf("%w: %q has kind %d", ErrUnknownKind, name, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("%w: cannot register %q", ErrFrozen, name)
	}
	if i, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %q already registered as %s", ErrDuplicate, name, r.entries[i].Kind)
	}

	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{
		Name: name,
		Path: path,
		Kind: kind,
		Lazy: lazy,
	})
	return nil
}

// RegisterScript registers a script to be preloaded.
func (r *Registry) RegisterScript(name, path string) error {
	return r.Register(name, path, KindScript, false)
}

// RegisterStyle registers a stylesheet to be preloaded.
// Lazy styles are applied after first paint and tracked with a cookie.
func (r *Registry) RegisterStyle(name, path string, lazy bool) error {
	return r.Register(name, path, KindStyle, lazy)
}

// MustRegister works like Register but panics on error.
// Intended for static wiring in main where a bad registration should stop startup.
func (r *Registry) MustRegister(name, path string, kind Kind, lazy bool) {
	if err := r.Register(name, path, kind, lazy); err != nil {
		panic(fmt.Sprintf("preload: %v", err))
	}
}

// List returns all entries of the given kind in registration order.
func (r *Registry) List(kind Kind) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// HasLazy reports whether at least one lazy style is registered.
func (r *Registry) HasLazy() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.Lazy {
			return true
		}
	}
	return false
}

// Len returns the number of registered resources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Freeze makes the registry read-only. Subsequent registrations fail with ErrFrozen.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}
