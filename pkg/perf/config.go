package perf

import (
	"time"

	"github.com/dmitrymomot/guardkit/pkg/config"
)

// Defaults applied by DefaultConfig and by New when a config carries
// non-positive sizes.
const (
	DefaultCacheSize = 1000
	DefaultBatchSize = 100
	DefaultTimeout   = 5 * time.Second
)

// Config tunes a Validator. The zero value disables everything; use
// DefaultConfig or LoadConfig for sensible settings.
type Config struct {
	// EnableCache toggles result caching on Test calls.
	EnableCache bool `env:"GUARDKIT_ENABLE_CACHE" envDefault:"true"`

	// CacheSize is the LRU capacity used when caching is enabled.
	CacheSize int `env:"GUARDKIT_CACHE_SIZE" envDefault:"1000"`

	// EnableMetrics toggles duration and outcome recording.
	EnableMetrics bool `env:"GUARDKIT_ENABLE_METRICS" envDefault:"true"`

	// EnableLazyLoading defers guard construction supplied via WithLazyGuard
	// until the first validation. When false the factory runs eagerly inside
	// New.
	EnableLazyLoading bool `env:"GUARDKIT_ENABLE_LAZY_LOADING" envDefault:"true"`

	// BatchSize is the chunk size used by TestBatch.
	BatchSize int `env:"GUARDKIT_BATCH_SIZE" envDefault:"100"`

	// Timeout bounds how long TestAsync waits for a result.
	Timeout time.Duration `env:"GUARDKIT_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns the settings used when no configuration is supplied:
// caching, metrics, and lazy loading on, with the package defaults above.
func DefaultConfig() Config {
	return Config{
		EnableCache:       true,
		CacheSize:         DefaultCacheSize,
		EnableMetrics:     true,
		EnableLazyLoading: true,
		BatchSize:         DefaultBatchSize,
		Timeout:           DefaultTimeout,
	}
}

// LoadConfig reads a Config from GUARDKIT_* environment variables, folding
// in a .env file when one is present.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// normalize replaces non-positive sizes with package defaults so a partially
// filled config cannot produce an unusable validator.
func (c Config) normalize() Config {
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
