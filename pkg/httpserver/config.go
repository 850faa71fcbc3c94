package httpserver

import "time"

type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`          // Addr is the address the server listens on.
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`    // ReadTimeout is the maximum duration for reading the entire request.
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`   // WriteTimeout is the maximum duration before timing out writes of the response.
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`   // IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"` // ShutdownTimeout is the time allowed for graceful shutdown.
}

// DefaultConfig returns the configuration New uses when no options are given.
func DefaultConfig() Config {
	d := defaultConfig()
	return Config{
		Addr:            d.addr,
		ReadTimeout:     d.readTimeout,
		WriteTimeout:    d.writeTimeout,
		IdleTimeout:     d.idleTimeout,
		ShutdownTimeout: d.shutdownTimeout,
	}
}

// NewFromConfig creates a new Server from the provided Config.
// Zero fields keep their defaults, so a partially filled Config is valid.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	cfg.ReadTimeout = orDefault(cfg.ReadTimeout, def.ReadTimeout)
	cfg.WriteTimeout = orDefault(cfg.WriteTimeout, def.WriteTimeout)
	cfg.IdleTimeout = orDefault(cfg.IdleTimeout, def.IdleTimeout)
	cfg.ShutdownTimeout = orDefault(cfg.ShutdownTimeout, def.ShutdownTimeout)

	configOpts := append([]Option{
		WithAddr(cfg.Addr),
		WithReadTimeout(cfg.ReadTimeout),
		WithWriteTimeout(cfg.WriteTimeout),
		WithIdleTimeout(cfg.IdleTimeout),
		WithShutdownTimeout(cfg.ShutdownTimeout),
	}, opts...)

	return New(configOpts...)
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
