package guard

import (
	"reflect"
	"sync"
)

// Union builds a predicate that tries guards in declaration order and
// accepts on the first success. Order is the tie-break: there is no
// best-match heuristic. An empty union rejects everything.
func Union(guards ...Guard) Guard {
	return func(value any) bool {
		for _, g := range guards {
			if g != nil && g(value) {
				return true
			}
		}
		return false
	}
}

// Literal builds a predicate accepting exactly the listed values, compared
// with Go equality. Equality is type-sensitive: int(1) and float64(1) are
// distinct literals. Values of uncomparable types never match.
func Literal(values ...any) Guard {
	return func(value any) bool {
		if value != nil && !reflect.TypeOf(value).Comparable() {
			return false
		}
		for _, lit := range values {
			if value == lit {
				return true
			}
		}
		return false
	}
}

// Nullable wraps a guard so that nil passes unconditionally, including typed
// nil pointers, and every other value is delegated to g.
func Nullable(g Guard) Guard {
	return func(value any) bool {
		if IsNil(value) {
			return true
		}
		return g != nil && g(value)
	}
}

// Record builds a predicate over maps of any kind: every key must satisfy
// keyGuard and every value must satisfy valueGuard. A nil keyGuard defaults
// to IsString, matching the common string-keyed object case. The walk fails
// fast on the first invalid pair.
func Record(valueGuard, keyGuard Guard) Guard {
	if keyGuard == nil {
		keyGuard = IsString
	}
	return func(value any) bool {
		if value == nil {
			return false
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map {
			return false
		}
		iter := rv.MapRange()
		for iter.Next() {
			if !keyGuard(iter.Key().Interface()) {
				return false
			}
			if valueGuard != nil && !valueGuard(iter.Value().Interface()) {
				return false
			}
		}
		return true
	}
}

// Conditional branches once on pred: values matching pred are checked by
// thenGuard, all others by elseGuard. A nil branch rejects values routed to
// it.
func Conditional(pred func(any) bool, thenGuard, elseGuard Guard) Guard {
	return func(value any) bool {
		if pred != nil && pred(value) {
			return thenGuard != nil && thenGuard(value)
		}
		return elseGuard != nil && elseGuard(value)
	}
}

// Cached wraps a guard with a small result memo keyed by the value itself.
// Once maxSize entries accumulate, the oldest inserted entry is dropped.
// Values of uncomparable types bypass the memo and are evaluated directly.
// The wrapper is safe for concurrent use; the underlying guard must be pure
// for the memo to be correct.
func Cached(g Guard, maxSize int) Guard {
	if maxSize <= 0 {
		maxSize = 1
	}
	var (
		mu    sync.Mutex
		memo  = make(map[any]bool, maxSize)
		order = make([]any, 0, maxSize)
	)
	return func(value any) bool {
		if g == nil {
			return false
		}
		if value != nil && !reflect.TypeOf(value).Comparable() {
			return g(value)
		}

		mu.Lock()
		if hit, ok := memo[value]; ok {
			mu.Unlock()
			return hit
		}
		mu.Unlock()

		// The guard runs outside the lock; concurrent callers may evaluate
		// the same value more than once before the memo is written.
		res := g(value)

		mu.Lock()
		if _, ok := memo[value]; !ok {
			if len(order) >= maxSize {
				oldest := order[0]
				order = order[1:]
				delete(memo, oldest)
			}
			memo[value] = res
			order = append(order, value)
		}
		mu.Unlock()
		return res
	}
}

// Lazy defers construction of a guard to its first invocation. The factory
// runs exactly once even under concurrent first calls; the built guard is
// memoized for every later call. A factory returning nil yields a guard that
// rejects everything.
func Lazy(factory func() Guard) Guard {
	var (
		once  sync.Once
		built Guard
	)
	return func(value any) bool {
		once.Do(func() {
			if factory != nil {
				built = factory()
			}
		})
		if built == nil {
			return false
		}
		return built(value)
	}
}
