package guard

import (
	"fmt"
	"reflect"
)

// ArrayConfig bounds the length of a validated array. Nil pointers leave a
// bound unset; NonEmpty rejects empty arrays even when no other bound is
// configured.
type ArrayConfig struct {
	MinLen   *int
	MaxLen   *int
	ExactLen *int
	NonEmpty bool
}

// lengthError returns the first violated length constraint, or "" when the
// length is acceptable. Length constraints are checked before any element,
// so a wrong-sized array fails regardless of element validity.
func (cfg ArrayConfig) lengthError(n int) string {
	if cfg.NonEmpty && n == 0 {
		return "array must not be empty"
	}
	if cfg.ExactLen != nil && n != *cfg.ExactLen {
		return fmt.Sprintf("length must be exactly %d, got %d", *cfg.ExactLen, n)
	}
	if cfg.MinLen != nil && n < *cfg.MinLen {
		return fmt.Sprintf("length must be at least %d, got %d", *cfg.MinLen, n)
	}
	if cfg.MaxLen != nil && n > *cfg.MaxLen {
		return fmt.Sprintf("length must be at most %d, got %d", *cfg.MaxLen, n)
	}
	return ""
}

// Array builds a predicate accepting slices and arrays whose length satisfies
// cfg and whose every element satisfies elem. Any single failing element
// fails the whole array.
func Array(elem Guard, cfg ArrayConfig) Guard {
	return func(value any) bool {
		items, ok := sliceValue(value)
		if !ok {
			return false
		}
		if cfg.lengthError(items.Len()) != "" {
			return false
		}
		if elem == nil {
			return true
		}
		for i := 0; i < items.Len(); i++ {
			if !elem(items.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
}

// ArrayValidator builds the detailed form of Array: length constraints are
// reported first and alone, then one message per failing index. When
// stopOnFirstError is set the element walk aborts at the first bad element.
func ArrayValidator(elem Guard, cfg ArrayConfig, stopOnFirstError bool) Validator[[]any] {
	return func(value any) Result[[]any] {
		items, ok := sliceValue(value)
		if !ok {
			return Fail[[]any]("value is not an array")
		}
		if msg := cfg.lengthError(items.Len()); msg != "" {
			return Fail[[]any](msg)
		}

		var errs []string
		out := make([]any, 0, items.Len())
		for i := 0; i < items.Len(); i++ {
			item := items.Index(i).Interface()
			if elem != nil && !elem(item) {
				errs = append(errs, fmt.Sprintf("element at index %d: invalid value", i))
				if stopOnFirstError {
					break
				}
				continue
			}
			out = append(out, item)
		}

		if len(errs) > 0 {
			return Fail[[]any](errs...)
		}
		return Ok(out)
	}
}

// Tuple builds a predicate over a fixed-length sequence: the value must be a
// slice or array of exactly len(elems) items, and the item at each position
// must satisfy the guard declared for that position.
func Tuple(elems ...Guard) Guard {
	return func(value any) bool {
		items, ok := sliceValue(value)
		if !ok || items.Len() != len(elems) {
			return false
		}
		for i, g := range elems {
			if g != nil && !g(items.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
}

// TupleValidator builds the detailed form of Tuple, collecting one message
// per failing position after the length check.
func TupleValidator(elems ...Guard) Validator[[]any] {
	return func(value any) Result[[]any] {
		items, ok := sliceValue(value)
		if !ok {
			return Fail[[]any]("value is not an array")
		}
		if items.Len() != len(elems) {
			return Fail[[]any](fmt.Sprintf("length must be exactly %d, got %d", len(elems), items.Len()))
		}

		var errs []string
		out := make([]any, 0, len(elems))
		for i, g := range elems {
			item := items.Index(i).Interface()
			if g != nil && !g(item) {
				errs = append(errs, fmt.Sprintf("element at index %d: invalid value", i))
				continue
			}
			out = append(out, item)
		}

		if len(errs) > 0 {
			return Fail[[]any](errs...)
		}
		return Ok(out)
	}
}

func sliceValue(value any) (reflect.Value, bool) {
	if value == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}
