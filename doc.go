// Package guardkit provides composable runtime validation for untyped data in Go.
//
// GuardKit is built for code that meets the outside world: API payloads, form
// input, configuration snapshots, queue messages. Values arrive as `any`, and
// GuardKit turns "is this what I think it is" into small, composable, testable
// functions with an optional performance layer on top.
//
// Key Features:
//
//   - Composable guards and detailed validators for untyped values
//   - Object, array, tuple, union, literal, record, and conditional combinators
//   - Fluent builder with optional, custom, and transform steps
//   - LRU result caching with a named-cache registry
//   - Lazy, exactly-once construction of expensive validators
//   - Priority-ordered, bounded-concurrency batch validation
//   - Metrics collection, advisory monitoring, and a Prometheus bridge
//
// The module is a pure in-process library organised as independent packages:
//
//   - pkg/guard: validation primitives and combinators
//   - pkg/cache: generic LRU cache and named-cache manager
//   - pkg/async: future/await helpers for asynchronous validation
//   - pkg/lazy: deferred, de-duplicated construction
//   - pkg/metrics: counters, advisory monitor, Prometheus collector
//   - pkg/perf: validators with caching, metrics, batch and async execution
//   - pkg/batch: priority-batched validation processor
//   - pkg/config: environment-based configuration loading
//
// Basic Usage:
//
//	import "github.com/dmitrymomot/guardkit/pkg/guard"
//
//	userGuard := guard.Object([]guard.Property{
//	    {Name: "id", Guard: guard.IsUUID, Required: true},
//	    {Name: "email", Guard: guard.IsEmail, Required: true},
//	    {Name: "age", Guard: guard.IsInt},
//	}, guard.ObjectConfig{Strict: true})
//
//	if !userGuard(payload) {
//	    // reject payload
//	}
//
// Detailed results collect every failure instead of short-circuiting:
//
//	validator := guard.ObjectValidator(props, guard.ObjectConfig{})
//	result := validator(payload)
//	if !result.Valid {
//	    for _, msg := range result.Errors {
//	        // property "email": invalid value
//	    }
//	}
//
// Hot paths wrap a guard once and reuse it:
//
//	import "github.com/dmitrymomot/guardkit/pkg/perf"
//
//	v, err := perf.New(userGuard)
//	if err != nil {
//	    return err
//	}
//	result := v.Test(payload) // cached, metered
//
// The packages follow these principles:
//   - Validation failure is data, not an error
//   - Guards may short-circuit, detailed validators never do
//   - Construction decides behavior; nothing is inferred at call time
//   - Explicit over implicit
package guardkit
