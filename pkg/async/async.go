package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the eventual result of an asynchronous computation, such
// as a validation run executing on another goroutine.
//
// A Future is produced either by Async, which runs a function on its own
// goroutine, or by NewFuture, which hands completion over to the caller.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// NewFuture creates an unresolved future. The holder settles it with
// Complete; everyone else blocks on Await or one of its bounded variants.
func NewFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

// Complete settles the future with a result and error, waking all waiters.
// Only the first call has any effect; later calls are ignored, so producers
// racing to settle the same future are safe.
func (f *Future[U]) Complete(result U, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Await waits for the computation to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the computation to complete with a timeout.
// Returns the result and error if the computation completes before the
// timeout; otherwise returns ErrTimeout. The computation itself keeps
// running, a timed-out wait does not cancel it.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// AwaitContext waits for the computation to complete or for the context to
// end, whichever happens first. When the context ends first, the context's
// error is returned and the computation keeps running.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// IsComplete checks if the computation is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the future settles. It allows futures
// to participate in select statements alongside other channels.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
// If the context is already canceled the function never runs and the future
// settles with the context error.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := NewFuture[U]()

	go func() {
		select {
		case <-ctx.Done():
			var zero U
			f.Complete(zero, ctx.Err())
			return
		default:
		}

		res, err := fn(ctx, param)
		f.Complete(res, err)
	}()

	return f
}

// WaitAll waits for all futures to complete and returns a slice of their results and an error
// if any of the futures returned an error.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// WaitAny waits for any of the futures to complete and returns the index of the completed future,
// its result, and any error it might have returned.
// Note: This function spawns one goroutine per future. All goroutines will complete naturally
// when their respective futures finish.
func WaitAny[U any](futures ...*Future[U]) (int, U, error) {
	if len(futures) == 0 {
		var zero U
		return -1, zero, ErrNoFutures
	}

	done := make(chan struct {
		index  int
		result U
		err    error
	})

	for i, future := range futures {
		go func(index int, f *Future[U]) {
			result, err := f.Await()
			select {
			case done <- struct {
				index  int
				result U
				err    error
			}{index, result, err}:
			default:
				// Prevents race condition where multiple futures complete simultaneously
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.result, res.err
}
