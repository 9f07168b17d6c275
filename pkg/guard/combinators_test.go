package guard_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guardkit/pkg/guard"
)

func TestUnion(t *testing.T) {
	stringOrNumber := guard.Union(guard.IsString, guard.IsNumber)

	assert.True(t, stringOrNumber("x"))
	assert.True(t, stringOrNumber(42))
	assert.False(t, stringOrNumber(nil))
	assert.False(t, stringOrNumber(true))

	t.Run("declaration order decides", func(t *testing.T) {
		var calls []string
		first := func(any) bool { calls = append(calls, "first"); return true }
		second := func(any) bool { calls = append(calls, "second"); return true }

		g := guard.Union(first, second)
		assert.True(t, g("anything"))
		assert.Equal(t, []string{"first"}, calls, "first success wins, later guards never run")
	})

	t.Run("empty union rejects", func(t *testing.T) {
		assert.False(t, guard.Union()("x"))
	})
}

func TestLiteral(t *testing.T) {
	status := guard.Literal("a", "b")

	assert.True(t, status("a"))
	assert.True(t, status("b"))
	assert.False(t, status("c"))
	assert.False(t, status(nil))

	t.Run("equality is type-sensitive", func(t *testing.T) {
		one := guard.Literal(1)
		assert.True(t, one(1))
		assert.False(t, one(1.0))
		assert.False(t, one("1"))
	})

	t.Run("uncomparable values never match", func(t *testing.T) {
		g := guard.Literal("x")
		assert.False(t, g([]string{"x"}))
		assert.False(t, g(map[string]any{}))
	})
}

func TestNullable(t *testing.T) {
	g := guard.Nullable(guard.IsString)

	assert.True(t, g(nil))
	assert.True(t, g("x"))
	assert.False(t, g(42))

	var p *int
	assert.True(t, g(p), "typed nil passes")
}

func TestRecord(t *testing.T) {
	settings := guard.Record(guard.IsBool, nil)

	assert.True(t, settings(map[string]any{"dark": true, "compact": false}))
	assert.True(t, settings(map[string]any{}), "empty record is valid")
	assert.False(t, settings(map[string]any{"dark": "yes"}), "invalid value")
	assert.False(t, settings([]any{}), "non-map input")
	assert.False(t, settings(nil))

	t.Run("custom key guard", func(t *testing.T) {
		byNumber := guard.Record(guard.IsString, guard.IsInt)
		assert.True(t, byNumber(map[int]any{1: "one"}))
		assert.False(t, byNumber(map[string]any{"1": "one"}), "string keys rejected")
	})
}

func TestConditional(t *testing.T) {
	// Strings must be non-empty, everything else must be a number.
	g := guard.Conditional(
		guard.IsString,
		func(v any) bool { return v.(string) != "" },
		guard.IsNumber,
	)

	assert.True(t, g("x"))
	assert.False(t, g(""))
	assert.True(t, g(42))
	assert.False(t, g(true))

	t.Run("nil else branch rejects", func(t *testing.T) {
		onlyStrings := guard.Conditional(guard.IsString, guard.IsString, nil)
		assert.True(t, onlyStrings("x"))
		assert.False(t, onlyStrings(42))
	})
}

func TestCached(t *testing.T) {
	t.Run("memoizes results", func(t *testing.T) {
		var calls atomic.Int64
		g := guard.Cached(func(v any) bool {
			calls.Add(1)
			return guard.IsString(v)
		}, 8)

		assert.True(t, g("x"))
		assert.True(t, g("x"))
		assert.True(t, g("x"))
		assert.Equal(t, int64(1), calls.Load(), "underlying guard ran once for a repeated value")

		assert.False(t, g(42))
		assert.False(t, g(42))
		assert.Equal(t, int64(2), calls.Load())
	})

	t.Run("evicts oldest inserted entry", func(t *testing.T) {
		var calls atomic.Int64
		g := guard.Cached(func(v any) bool {
			calls.Add(1)
			return true
		}, 2)

		g("a") // cached
		g("b") // cached
		g("c") // evicts "a"
		assert.Equal(t, int64(3), calls.Load())

		g("c") // hit
		g("b") // hit
		assert.Equal(t, int64(3), calls.Load())

		g("a") // miss again after eviction
		assert.Equal(t, int64(4), calls.Load())
	})

	t.Run("uncomparable values bypass the memo", func(t *testing.T) {
		var calls atomic.Int64
		g := guard.Cached(func(v any) bool {
			calls.Add(1)
			return true
		}, 8)

		g([]int{1})
		g([]int{1})
		assert.Equal(t, int64(2), calls.Load())
	})

	t.Run("concurrent access", func(t *testing.T) {
		g := guard.Cached(guard.IsString, 16)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				g("x")
				g(n)
			}(i)
		}
		wg.Wait()
	})
}

func TestLazy(t *testing.T) {
	t.Run("factory runs on first call only", func(t *testing.T) {
		var built atomic.Int64
		g := guard.Lazy(func() guard.Guard {
			built.Add(1)
			return guard.IsString
		})

		assert.Equal(t, int64(0), built.Load(), "nothing built before first use")
		assert.True(t, g("x"))
		assert.False(t, g(42))
		assert.True(t, g("y"))
		assert.Equal(t, int64(1), built.Load())
	})

	t.Run("concurrent first calls build once", func(t *testing.T) {
		var built atomic.Int64
		g := guard.Lazy(func() guard.Guard {
			built.Add(1)
			return guard.IsString
		})

		var wg sync.WaitGroup
		for _i := 0; _i < 32; _i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				g("x")
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(1), built.Load())
	})

	t.Run("nil factory result rejects", func(t *testing.T) {
		g := guard.Lazy(func() guard.Guard { return nil })
		assert.False(t, g("x"))
	})
}
