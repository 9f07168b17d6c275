package guard

import (
	"fmt"
	"strings"
)

// Guard is a predicate that reports whether an untyped value conforms to an
// expected shape. Guards are pure: the same value always yields the same
// answer. Guards may short-circuit on the first failure they encounter.
type Guard func(value any) bool

// Validator produces a detailed Result for an untyped value. Unlike a Guard,
// a Validator never short-circuits: it accumulates every error it finds so
// callers can report all problems at once.
type Validator[T any] func(value any) Result[T]

// Result reports the outcome of a detailed validation. Data is meaningful
// only when Valid is true. Errors carry human-readable, path-prefixed
// messages such as `property "name": value is required`.
type Result[T any] struct {
	Valid  bool
	Data   T
	Errors []string
}

// Ok returns a successful Result carrying data.
func Ok[T any](data T) Result[T] {
	return Result[T]{Valid: true, Data: data}
}

// Fail returns a failed Result with the given error messages.
func Fail[T any](errs ...string) Result[T] {
	return Result[T]{Errors: errs}
}

// Error renders the accumulated messages as a single string, or an empty
// string for a valid result.
func (r Result[T]) Error() string {
	if r.Valid {
		return ""
	}
	return strings.Join(r.Errors, "; ")
}

// AsDetail erases a typed validator so it can serve as a Property.Detail
// rule inside an object schema. Errors and validity carry over unchanged.
func AsDetail[T any](v Validator[T]) Validator[any] {
	return func(value any) Result[any] {
		res := v(value)
		return Result[any]{Valid: res.Valid, Data: res.Data, Errors: res.Errors}
	}
}

// FromGuard lifts a predicate into the detailed form. The returned validator
// fails with a generic message when the guard rejects the value, and extracts
// Data via type assertion on success. A passing guard whose value cannot be
// asserted to T indicates a schema mismatch and is reported as a failure
// rather than a panic.
//
// This is the single sanctioned bridge between the two validator forms: the
// shape of a rule is decided here, at construction time, never inferred at
// call time.
func FromGuard[T any](g Guard) Validator[T] {
	return func(value any) Result[T] {
		if g == nil || !g(value) {
			return Fail[T]("value is invalid")
		}
		data, ok := value.(T)
		if !ok {
			if value == nil {
				var zero T
				return Ok(zero)
			}
			return Fail[T](fmt.Sprintf("value has unexpected type %T", value))
		}
		return Ok(data)
	}
}
