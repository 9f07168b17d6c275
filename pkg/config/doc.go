// Package config provides a type-safe, generic way to load configuration
// from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from one or multiple `.env` files (falling back to the
//     default `.env` in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for configuration
//     the process cannot run without.
//
// Parsing is stateless: every Load call reads the current environment, so
// tests can set variables with t.Setenv and reload without global resets.
//
// # Usage
//
// Create a struct describing your configuration and annotate its fields with
// `env` tags:
//
//	type ValidationConfig struct {
//	    CacheSize   int           `env:"CACHE_SIZE" envDefault:"1000"`
//	    EnableCache bool          `env:"ENABLE_CACHE" envDefault:"true"`
//	    Timeout     time.Duration `env:"TIMEOUT" envDefault:"5s"`
//	}
//
// Then populate it:
//
//	var cfg ValidationConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Additional `.env` files can be folded in first:
//
//	if err := config.LoadEnv(".env.local", ".env"); err != nil {
//	    log.Fatal(err)
//	}
//
// Variables already present in the process environment always win over
// `.env` file contents.
package config
