// Package async provides simple, generic helpers for running computations asynchronously and
// waiting for their completion.
//
// The package is centred around the generic type Future that represents the eventual result of an
// asynchronous operation.  A Future can be obtained in two ways: Async starts the supplied function
// in its own goroutine and immediately returns a *Future instance, while NewFuture returns an
// unresolved future that a producer settles later with Complete.  The caller can then wait for
// completion with Await, block with a timeout using AwaitWithTimeout, bound the wait by a context
// using AwaitContext, or poll the state with IsComplete.
//
// In addition to operating on a single Future, the helpers WaitAll and WaitAny make it easy to
// coordinate multiple concurrent tasks, either collecting every result or returning the first one
// to finish.
//
// Async checks the context once, before invoking the function: when the context is already
// cancelled the function never runs and the Future settles with the context error. A function
// that should stop mid-run must honour the context it receives itself.
//
// # Usage
//
//	import (
//	    "context"
//	    "time"
//	    "github.com/dmitrymomot/guardkit/pkg/async"
//	)
//
//	func main() {
//	    ctx := context.Background()
//	    future := async.Async(ctx, payload, func(_ context.Context, v map[string]any) (bool, error) {
//	        return userSchema(v), nil
//	    })
//
//	    // do other work …
//	    valid, err := future.AwaitWithTimeout(5 * time.Second)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(valid)
//	}
//
// # Manual Settlement
//
// NewFuture suits pipelines where the producer and the consumer are decoupled, like a processor
// that accepts work through a queue and settles each submission when a worker gets to it:
//
//	f := async.NewFuture[bool]()
//	queue <- job{payload: payload, future: f}
//
//	// elsewhere, in a worker:
//	f.Complete(userSchema(job.payload), nil)
//
// Complete is idempotent; when several producers race, the first settlement wins and the rest are
// ignored.
//
// # Error Handling
//
// The package does not introduce custom error types beyond two sentinels; functions return the
// error produced by the user callback, ErrTimeout when AwaitWithTimeout expires, or the context
// error when AwaitContext is cut short.
//
// # Performance Considerations
//
// Futures are lightweight wrappers around goroutines and channels.  The overhead is minimal but you
// should avoid spawning an excessive number of goroutines if the workload could be better handled
// by a worker pool or other means of limiting concurrency.
//
// See the individual function-level comments for additional details and behaviour guarantees.
package async
