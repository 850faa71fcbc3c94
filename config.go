package preload

import "time"

// Config holds preloader configuration loaded from the environment.
type Config struct {
	CookiePrefix         string        `env:"PRELOAD_COOKIE_PREFIX" envDefault:"CSS_CACHED_"`
	CookieMaxAge         time.Duration `env:"PRELOAD_COOKIE_MAX_AGE" envDefault:"720h"`
	FingerprintCacheSize int           `env:"PRELOAD_FINGERPRINT_CACHE_SIZE" envDefault:"256"`
	Manifest             string        `env:"PRELOAD_MANIFEST" envDefault:""`
	Polyfill             bool          `env:"PRELOAD_POLYFILL" envDefault:"true"`
}

// DefaultConfig returns the default preloader configuration.
func DefaultConfig() Config {
	return Config{
		CookiePrefix:         DefaultCookiePrefix,
		CookieMaxAge:         DefaultCookieMaxAge,
		FingerprintCacheSize: defaultFingerprintCacheSize,
		Polyfill:             true,
	}
}

// NewFromConfig creates a Preloader from cfg.
// If cfg.Manifest is set the manifest is loaded into registry first.
// Only non-zero values from the config are applied, except Polyfill which is
// always applied: a zero Config disables the footer polyfill. Start from
// DefaultConfig when building a Config in code.
func NewFromConfig(cfg Config, registry *Registry, opts ...Option) (*Preloader, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	if cfg.Manifest != "" {
		if err := registry.LoadManifestFile(cfg.Manifest); err != nil {
			return nil, err
		}
	}

	configOpts := make([]Option, 0, 4)

	if cfg.CookiePrefix != "" {
		configOpts = append(configOpts, WithCookiePrefix(cfg.CookiePrefix))
	}
	if cfg.CookieMaxAge > 0 {
		configOpts = append(configOpts, WithCookieMaxAge(cfg.CookieMaxAge))
	}
	if cfg.FingerprintCacheSize > 0 {
		configOpts = append(configOpts, WithFingerprintCacheSize(cfg.FingerprintCacheSize))
	}
	configOpts = append(configOpts, WithPolyfill(cfg.Polyfill))

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	return New(registry, configOpts...)
}
