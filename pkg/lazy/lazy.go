package lazy

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Factory defers an expensive construction until first use and memoizes the
// result. Concurrent first callers are deduplicated: the factory function
// runs exactly once per build generation no matter how many goroutines race,
// and the losers receive the winner's result.
//
// A failed build is not memoized. The error is returned to every caller of
// the losing flight, the factory stays empty, and a later Get retries.
type Factory[T any] struct {
	fn    func() (T, error)
	group singleflight.Group

	mu    sync.RWMutex
	value T
	built bool
	gen   uint64
}

// New creates a factory around fn. The function must not be nil, otherwise
// it panics.
func New[T any](fn func() (T, error)) *Factory[T] {
	if fn == nil {
		panic("lazy: factory function is required")
	}
	return &Factory[T]{fn: fn}
}

// Get returns the constructed value, building it on first use. Concurrent
// callers share a single in-flight construction. The context bounds only the
// wait: when it ends before the build finishes, Get returns the context
// error while the construction keeps running for the remaining callers.
func (f *Factory[T]) Get(ctx context.Context) (T, error) {
	f.mu.RLock()
	if f.built {
		value := f.value
		f.mu.RUnlock()
		return value, nil
	}
	gen := f.gen
	f.mu.RUnlock()

	// The generation doubles as the flight key so a Reset issued during an
	// in-flight build starts a fresh flight instead of joining a stale one.
	ch := f.group.DoChan(strconv.FormatUint(gen, 10), func() (any, error) {
		value, err := f.fn()
		if err != nil {
			return nil, err
		}

		f.mu.Lock()
		if f.gen == gen {
			f.value = value
			f.built = true
		}
		f.mu.Unlock()
		return value, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Peek returns the constructed value without building. The second return is
// false until a build has completed, mirroring Get's fast path.
func (f *Factory[T]) Peek() (T, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value, f.built
}

// Reset clears the cached value so the next Get rebuilds it, again exactly
// once. A build already in flight keeps running but its result is discarded
// rather than published.
func (f *Factory[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	f.value = zero
	f.built = false
	f.gen++
}
