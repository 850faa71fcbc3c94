package preload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the declarative form of a registry.
//
//	scripts:
//	  - name: app
//	    path: scripts/main.js
//	styles:
//	  - name: main
//	    path: styles/main.css
//	  - name: fonts
//	    path: styles/fonts.css
//	    lazy: true
type Manifest struct {
	Scripts []ManifestItem `yaml:"scripts"`
	Styles  []ManifestItem `yaml:"styles"`
}

type ManifestItem struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Lazy bool   `yaml:"lazy"`
}

// LoadManifest decodes a YAML manifest from r and registers every item.
// Scripts are registered before styles, each in document order.
// The first invalid item aborts the load.
func (r *Registry) LoadManifest(src io.Reader) error {
	var m Manifest
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Join(ErrInvalidManifest, err)
	}

	for _, it := range m.Scripts {
		if it.Lazy {
			return fmt.Errorf("%w: script %q: %w", ErrInvalidManifest, it.Name, ErrLazyScript)
		}
		if err := r.RegisterScript(it.Name, it.Path); err != nil {
			return errors.Join(ErrInvalidManifest, err)
		}
	}
	for _, it := range m.Styles {
		if err := r.RegisterStyle(it.Name, it.Path, it.Lazy); err != nil {
			return errors.Join(ErrInvalidManifest, err)
		}
	}
	return nil
}

// LoadManifestFile opens path and passes it to LoadManifest.
func (r *Registry) LoadManifestFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	return r.LoadManifest(f)
}
