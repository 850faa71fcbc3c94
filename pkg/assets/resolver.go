package assets

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Resolver turns source asset paths into public URLs, following a revision
// manifest ({"styles/main.css": "styles/main_3b0a1c.css"}) when one is loaded.
type Resolver struct {
	base     string
	manifest map[string]string
}

type Option func(*Resolver) error

// WithManifest decodes a manifest from r. JSON and YAML are both accepted.
func WithManifest(r io.Reader) Option {
	return func(res *Resolver) error {
		m, err := decodeManifest(r)
		if err != nil {
			return err
		}
		for k, v := range m {
			res.manifest[normalize(k)] = normalize(v)
		}
		return nil
	}
}

// WithManifestFile reads the manifest at path.
func WithManifestFile(path string) Option {
	return func(res *Resolver) error {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		defer f.Close()
		return WithManifest(f)(res)
	}
}

// WithEntries adds manifest entries directly.
func WithEntries(entries map[string]string) Option {
	return func(res *Resolver) error {
		for k, v := range entries {
			res.manifest[normalize(k)] = normalize(v)
		}
		return nil
	}
}

// New returns a resolver serving assets under baseURL, which may be a path
// ("/app/themes/sage/dist") or an absolute URL ("https://cdn.example.com").
func New(baseURL string, opts ...Option) (*Resolver, error) {
	if baseURL == "" {
		baseURL = "/"
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	res := &Resolver{
		base:     strings.TrimRight(baseURL, "/"),
		manifest: make(map[string]string),
	}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Resolve returns the public URL for path.
// Absolute and protocol-relative URLs are returned unchanged; paths missing
// from the manifest resolve to base + path.
func (r *Resolver) Resolve(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrEmptyPath
	}
	if isAbsoluteURL(path) {
		return path, nil
	}

	key := normalize(path)
	if rev, ok := r.manifest[key]; ok {
		key = rev
	}
	return r.base + "/" + key, nil
}

func (r *Resolver) Len() int { return len(r.manifest) }

func decodeManifest(r io.Reader) (map[string]string, error) {
	m := make(map[string]string)
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return m, nil
}

func normalize(p string) string {
	return strings.TrimLeft(strings.TrimSpace(p), "/")
}

func isAbsoluteURL(p string) bool {
	if strings.HasPrefix(p, "//") {
		return true
	}
	u, err := url.Parse(p)
	return err == nil && u.Scheme != "" && u.Host != ""
}
