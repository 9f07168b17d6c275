package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv folds the given .env files into the process environment without
// overriding variables that are already set. With no arguments it loads the
// default .env from the current working directory.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates v from the process environment based on `env` field tags.
// The default .env file, when present, is folded into the environment the
// first time any configuration loads.
//
// Load parses on every call, so tests can adjust the environment with
// t.Setenv and reload.
//
// Example:
//
//	type ValidationConfig struct {
//		CacheSize int           `env:"CACHE_SIZE" envDefault:"1000"`
//		Timeout   time.Duration `env:"TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg ValidationConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	var cfg ValidationConfig
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: failed to load required configuration: %v", err))
	}
}
