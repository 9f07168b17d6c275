package lazy_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dmitrymomot/guardkit/pkg/lazy"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFactory_Get(t *testing.T) {
	t.Run("builds on first use", func(t *testing.T) {
		var calls atomic.Int32
		factory := lazy.New(func() (string, error) {
			calls.Add(1)
			return "built", nil
		})

		value, err := factory.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "built", value)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("memoizes across serial calls", func(t *testing.T) {
		var calls atomic.Int32
		factory := lazy.New(func() (int, error) {
			calls.Add(1)
			return 42, nil
		})

		for _i := 0; _i < 10; _i++ {
			value, err := factory.Get(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 42, value)
		}
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("exactly once under concurrency", func(t *testing.T) {
		var calls atomic.Int32
		start := make(chan struct{})

		factory := lazy.New(func() (int, error) {
			calls.Add(1)
			time.Sleep(10 * time.Millisecond)
			return 7, nil
		})

		const workers = 32
		var wg sync.WaitGroup
		for _i := 0; _i < workers; _i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				value, err := factory.Get(context.Background())
				assert.NoError(t, err)
				assert.Equal(t, 7, value)
			}()
		}

		close(start)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load(), "factory must run exactly once")
	})

	t.Run("errors are not memoized", func(t *testing.T) {
		var calls atomic.Int32
		boom := errors.New("schema compilation failed")

		factory := lazy.New(func() (string, error) {
			if calls.Add(1) == 1 {
				return "", boom
			}
			return "second try", nil
		})

		_, err := factory.Get(context.Background())
		require.ErrorIs(t, err, boom)

		value, err := factory.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "second try", value)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("context bounds the wait only", func(t *testing.T) {
		release := make(chan struct{})
		factory := lazy.New(func() (string, error) {
			<-release
			return "slow", nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := factory.Get(ctx)
		require.ErrorIs(t, err, context.Canceled)

		// The abandoned build still completes and publishes.
		close(release)
		require.Eventually(t, func() bool {
			_, ok := factory.Peek()
			return ok
		}, time.Second, 5*time.Millisecond)

		value, err := factory.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "slow", value)
	})
}

func TestFactory_Peek(t *testing.T) {
	factory := lazy.New(func() (int, error) {
		return 99, nil
	})

	value, ok := factory.Peek()
	assert.False(t, ok, "peek must not trigger construction")
	assert.Zero(t, value)

	_, err := factory.Get(context.Background())
	require.NoError(t, err)

	value, ok = factory.Peek()
	assert.True(t, ok)
	assert.Equal(t, 99, value)
}

func TestFactory_Reset(t *testing.T) {
	t.Run("forces rebuild", func(t *testing.T) {
		var calls atomic.Int32
		factory := lazy.New(func() (int32, error) {
			return calls.Add(1), nil
		})

		value, err := factory.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(1), value)

		factory.Reset()

		_, ok := factory.Peek()
		assert.False(t, ok, "reset must clear cached state")

		value, err = factory.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), value)
	})

	t.Run("discards in-flight build", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		var calls atomic.Int32

		factory := lazy.New(func() (int32, error) {
			n := calls.Add(1)
			if n == 1 {
				close(started)
				<-release
			}
			return n, nil
		})

		done := make(chan struct{})
		go func() {
			defer close(done)
			value, err := factory.Get(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, int32(1), value, "waiter joined the first flight")
		}()

		<-started
		factory.Reset()
		close(release)
		<-done

		// The stale build must not have been published.
		value, err := factory.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), value)
	})
}

func TestFactory_NilFunction(t *testing.T) {
	assert.Panics(t, func() {
		lazy.New[string](nil)
	})
}
