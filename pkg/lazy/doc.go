// Package lazy provides exactly-once deferred construction for expensive
// values such as large validator schemas compiled from configuration.
//
// A Factory wraps a construction function and delays it until the first Get.
// Construction is deduplicated across goroutines: when many callers hit an
// unbuilt factory at once, one build runs and everyone shares its result.
// After a successful build, Get is a cheap read.
//
// # Usage
//
//	factory := lazy.New(func() (guard.Guard, error) {
//	    return compileSchema(schemaDef)
//	})
//
//	g, err := factory.Get(ctx)
//	if err != nil {
//	    return err
//	}
//	valid := g(payload)
//
// # Failed Builds
//
// Errors are not memoized. Every caller waiting on the failed flight gets
// the error, the factory remains empty, and the next Get triggers a fresh
// build. Callers that must not retry should wrap the factory function with
// their own latch.
//
// # Inspection and Invalidation
//
// Peek reports the built value without triggering construction, returning
// false until a build has completed. Reset discards the cached value so the
// next Get rebuilds; a build in flight at reset time finishes but its result
// is dropped.
package lazy
