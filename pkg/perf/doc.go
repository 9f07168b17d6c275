// Package perf wraps validation rules with result caching, metrics, and
// deadline-bounded execution for hot paths that validate the same shapes of
// data over and over.
//
// A Validator owns one rule, either a guard.Guard predicate or a detailed
// guard.Validator, plus an LRU cache of outcomes keyed by the validated
// value and a metrics collector. Because rules are pure, a cached outcome is
// indistinguishable from a fresh run.
//
// # Usage
//
//	v, err := perf.New(userSchema)
//	if err != nil {
//	    return err
//	}
//
//	result := v.Test(payload)
//	if !result.Valid {
//	    log.Println(result.Error())
//	}
//
// The second Test of an equal payload is a cache lookup; the rule does not
// run again.
//
// # Configuration
//
// Settings come from DefaultConfig, from explicit WithConfig, or from
// GUARDKIT_* environment variables via LoadConfig:
//
//	cfg, err := perf.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	v, err := perf.New(userSchema, perf.WithConfig(cfg))
//
// # Cache keys
//
// Keys derive from the validated value through a pluggable KeyFunc. The
// default CanonicalKey renders primitives with a type prefix and composites
// through encoding/json with sorted map keys, so structurally equal values
// collide on purpose. Values with identity semantics or json-hostile fields
// should inject their own KeyFunc.
//
// # Batches and deadlines
//
// TestBatch validates a slice in configured chunks, yielding between chunks
// and stopping early when the context ends. TestAsync runs a single
// validation off-goroutine and gives up waiting after the configured
// timeout, returning async.ErrTimeout while the run completes in the
// background and warms the cache.
//
// # Shared infrastructure
//
// Validators default to private caches and collectors. Wire several into one
// observability stack by sharing a cache.Manager and a metrics.Collector:
//
//	manager := cache.NewManager[guard.Result[any]](1000)
//	collector := metrics.NewCollector()
//
//	users, _ := perf.New(userSchema,
//	    perf.WithCacheManager(manager),
//	    perf.WithCacheName("users"),
//	    perf.WithCollector(collector),
//	)
//	events, _ := perf.New(eventSchema,
//	    perf.WithCacheManager(manager),
//	    perf.WithCacheName("events"),
//	    perf.WithCollector(collector),
//	)
//
// A metrics.Monitor pointed at the same manager and collector then reports
// across both.
package perf
