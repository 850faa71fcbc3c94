package assets

// Config holds resolver configuration
type Config struct {
	BaseURL  string `env:"ASSETS_BASE_URL" envDefault:"/"`
	Manifest string `env:"ASSETS_MANIFEST" envDefault:""`
}

// NewFromConfig creates a Resolver from cfg, loading the manifest file if set.
func NewFromConfig(cfg Config, opts ...Option) (*Resolver, error) {
	configOpts := make([]Option, 0, 1)
	if cfg.Manifest != "" {
		configOpts = append(configOpts, WithManifestFile(cfg.Manifest))
	}
	configOpts = append(configOpts, opts...)

	return New(cfg.BaseURL, configOpts...)
}
