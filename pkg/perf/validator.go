package perf

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/guardkit/pkg/async"
	"github.com/dmitrymomot/guardkit/pkg/cache"
	"github.com/dmitrymomot/guardkit/pkg/guard"
	"github.com/dmitrymomot/guardkit/pkg/lazy"
	"github.com/dmitrymomot/guardkit/pkg/metrics"
)

// Validator wraps a single validation rule with result caching, metrics
// recording, and deadline-bounded asynchronous execution. The rule itself
// stays pure; everything here is bookkeeping around it.
//
// A Validator is safe for concurrent use.
type Validator struct {
	cfg       Config
	rule      guard.Validator[any]
	lazyRule  *lazy.Factory[guard.Validator[any]]
	results   *cache.LRUCache[string, guard.Result[any]]
	collector *metrics.Collector
	keyFn     KeyFunc
}

// Option configures a Validator.
type Option func(*validatorOptions)

type validatorOptions struct {
	cfg       Config
	manager   *cache.Manager[guard.Result[any]]
	cacheName string
	collector *metrics.Collector
	keyFn     KeyFunc
	factory   func() (guard.Guard, error)
}

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(o *validatorOptions) {
		o.cfg = cfg
	}
}

// WithCacheManager obtains the result cache from a shared registry instead
// of a private cache. Combine with WithCacheName to control the registry
// key; validators sharing a manager must use distinct names, since cached
// results are only as good as the rule that produced them.
func WithCacheManager(m *cache.Manager[guard.Result[any]]) Option {
	return func(o *validatorOptions) {
		o.manager = m
	}
}

// WithCacheName sets the registry key used with WithCacheManager.
// Defaults to a unique name per validator.
func WithCacheName(name string) Option {
	return func(o *validatorOptions) {
		if name != "" {
			o.cacheName = name
		}
	}
}

// WithCollector records metrics into a shared collector, letting one monitor
// observe several validators. Defaults to a private collector when metrics
// are enabled.
func WithCollector(c *metrics.Collector) Option {
	return func(o *validatorOptions) {
		o.collector = c
	}
}

// WithKeyFunc replaces the cache key derivation. See CanonicalKey for the
// default behavior and its collision semantics.
func WithKeyFunc(fn KeyFunc) Option {
	return func(o *validatorOptions) {
		if fn != nil {
			o.keyFn = fn
		}
	}
}

// WithLazyGuard supplies the rule as a factory instead of a built guard.
// With EnableLazyLoading the factory runs on the first validation, exactly
// once no matter how many goroutines arrive; otherwise it runs inside New.
func WithLazyGuard(factory func() (guard.Guard, error)) Option {
	return func(o *validatorOptions) {
		o.factory = factory
	}
}

// New creates a Validator around a predicate rule. Pass nil together with
// WithLazyGuard to defer construction.
func New(g guard.Guard, opts ...Option) (*Validator, error) {
	var rule guard.Validator[any]
	if g != nil {
		rule = guard.FromGuard[any](g)
	}
	return newValidator(rule, g != nil, opts...)
}

// NewDetailed creates a Validator around a detailed rule, for schemas that
// report per-field errors rather than a plain yes or no.
func NewDetailed(d guard.Validator[any], opts ...Option) (*Validator, error) {
	return newValidator(d, d != nil, opts...)
}

func newValidator(rule guard.Validator[any], haveRule bool, opts ...Option) (*Validator, error) {
	options := &validatorOptions{
		cfg:   DefaultConfig(),
		keyFn: CanonicalKey,
	}
	for _, opt := range opts {
		opt(options)
	}

	if haveRule && options.factory != nil {
		return nil, ErrGuardConflict
	}
	if !haveRule && options.factory == nil {
		return nil, ErrNilGuard
	}

	cfg := options.cfg.normalize()

	v := &Validator{
		cfg:       cfg,
		rule:      rule,
		collector: options.collector,
		keyFn:     options.keyFn,
	}

	if options.factory != nil {
		build := func() (guard.Validator[any], error) {
			g, err := options.factory()
			if err != nil {
				return nil, err
			}
			if g == nil {
				return nil, ErrNilGuard
			}
			return guard.FromGuard[any](g), nil
		}

		if cfg.EnableLazyLoading {
			v.lazyRule = lazy.New(build)
		} else {
			built, err := build()
			if err != nil {
				return nil, fmt.Errorf("perf: eager guard construction failed: %w", err)
			}
			v.rule = built
		}
	}

	if cfg.EnableCache {
		if options.manager != nil {
			name := options.cacheName
			if name == "" {
				name = "validator:" + uuid.NewString()
			}
			v.results = options.manager.CacheWithCapacity(name, cfg.CacheSize)
		} else {
			v.results = cache.NewLRUCache[string, guard.Result[any]](cfg.CacheSize)
		}
	}

	if cfg.EnableMetrics && v.collector == nil {
		v.collector = metrics.NewCollector()
	}

	return v, nil
}

// Test validates a value, consulting the result cache first when caching is
// enabled. Cached outcomes are returned without re-running the rule; fresh
// outcomes are stored under the value's derived key.
func (v *Validator) Test(value any) guard.Result[any] {
	start := time.Now()

	rule, err := v.resolveRule()
	if err != nil {
		result := guard.Fail[any](fmt.Sprintf("validator construction failed: %v", err))
		v.record(time.Since(start), false, false)
		return result
	}

	if v.results == nil {
		result := rule(value)
		v.record(time.Since(start), result.Valid, false)
		return result
	}

	key := v.keyFn(value)
	if cached, ok := v.results.Get(key); ok {
		v.record(time.Since(start), cached.Valid, true)
		return cached
	}

	result := rule(value)
	v.results.Put(key, result)
	v.record(time.Since(start), result.Valid, false)
	return result
}

// TestBatch validates values in chunks of the configured batch size,
// yielding the processor between chunks so long batches cannot starve other
// goroutines. When ctx ends mid-batch the results produced so far are
// returned together with the context error.
func (v *Validator) TestBatch(ctx context.Context, values []any) ([]guard.Result[any], error) {
	results := make([]guard.Result[any], 0, len(values))

	for start := 0; start < len(values); start += v.cfg.BatchSize {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		end := min(start+v.cfg.BatchSize, len(values))
		for _, value := range values[start:end] {
			results = append(results, v.Test(value))
		}

		if end < len(values) {
			runtime.Gosched()
		}
	}

	return results, nil
}

// TestAsync runs Test on its own goroutine and waits up to the configured
// timeout. On timeout it returns async.ErrTimeout while the validation
// finishes in the background; its result still lands in the cache for the
// next caller.
func (v *Validator) TestAsync(ctx context.Context, value any) (guard.Result[any], error) {
	future := async.Async(ctx, value, func(_ context.Context, val any) (guard.Result[any], error) {
		return v.Test(val), nil
	})
	return future.AwaitWithTimeout(v.cfg.Timeout)
}

// ClearCache purges all cached results. A no-op when caching is disabled.
func (v *Validator) ClearCache() {
	if v.results != nil {
		v.results.Clear()
	}
}

// CacheStats reports the result cache's counters. The second return is false
// when caching is disabled.
func (v *Validator) CacheStats() (cache.Stats, bool) {
	if v.results == nil {
		return cache.Stats{}, false
	}
	return v.results.Stats(), true
}

// Metrics returns a snapshot of the validator's counters. An empty snapshot
// when metrics are disabled.
func (v *Validator) Metrics() metrics.Metrics {
	if v.collector == nil {
		return metrics.Metrics{}
	}
	return v.collector.Snapshot()
}

// ResetMetrics zeroes the validator's counters. A no-op when metrics are
// disabled.
func (v *Validator) ResetMetrics() {
	if v.collector != nil {
		v.collector.Reset()
	}
}

func (v *Validator) resolveRule() (guard.Validator[any], error) {
	if v.lazyRule != nil {
		return v.lazyRule.Get(context.Background())
	}
	return v.rule, nil
}

func (v *Validator) record(duration time.Duration, success, cacheHit bool) {
	if v.collector != nil && v.cfg.EnableMetrics {
		v.collector.Record(duration, success, cacheHit)
	}
}
