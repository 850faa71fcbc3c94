// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct-tag parsing:
//
//	type Config struct {
//	    Manifest string `env:"PRELOAD_MANIFEST"`
//	    Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    log.Fatal(err)
//	}
//	var cfg Config
//	config.MustLoad(&cfg)
//
// The default .env file in the working directory is read once per process on
// the first Load call, if it exists. Variables already present in the
// environment always win over .env values.
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer, so callers can use errors.Is.
package config
