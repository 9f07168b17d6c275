package guard

import (
	"fmt"
)

// Builder composes a base validator with optional acceptance, custom checks
// and transformations. Builders are immutable: every method returns a new
// builder, so a shared base can be forked into variants safely.
type Builder[T any] struct {
	v Validator[T]
}

// NewBuilder wraps a detailed validator. It panics on a nil validator to
// surface schema wiring mistakes at definition time.
func NewBuilder[T any](v Validator[T]) *Builder[T] {
	if v == nil {
		panic("guard: builder requires a base validator")
	}
	return &Builder[T]{v: v}
}

// NewBuilderFromGuard wraps a predicate, lifting it through FromGuard.
func NewBuilderFromGuard[T any](g Guard) *Builder[T] {
	return NewBuilder(FromGuard[T](g))
}

// Optional returns a builder that treats nil input as valid with zero Data,
// delegating every other value to the base validator.
func (b *Builder[T]) Optional() *Builder[T] {
	base := b.v
	return &Builder[T]{v: func(value any) Result[T] {
		if IsNil(value) {
			var zero T
			return Ok(zero)
		}
		return base(value)
	}}
}

// Custom returns a builder that runs fn on the validated data after the base
// validator succeeds. A non-nil error fails the result with the error text
// as the message; base failures pass through untouched.
func (b *Builder[T]) Custom(fn func(T) error) *Builder[T] {
	base := b.v
	return &Builder[T]{v: func(value any) Result[T] {
		res := base(value)
		if !res.Valid || fn == nil {
			return res
		}
		if err := fn(res.Data); err != nil {
			return Fail[T](err.Error())
		}
		return res
	}}
}

// Transform returns a builder that rewrites successful results through fn.
// A returned error, or a panic inside fn, is converted into a failed result
// with a descriptive message: transformation never panics out of the
// builder.
func (b *Builder[T]) Transform(fn func(T) (T, error)) *Builder[T] {
	base := b.v
	return &Builder[T]{v: func(value any) (out Result[T]) {
		res := base(value)
		if !res.Valid || fn == nil {
			return res
		}
		defer func() {
			if r := recover(); r != nil {
				out = Fail[T](fmt.Sprintf("transform failed: %v", r))
			}
		}()
		data, err := fn(res.Data)
		if err != nil {
			return Fail[T](fmt.Sprintf("transform failed: %v", err))
		}
		return Ok(data)
	}}
}

// Validate runs the composed validator against a value.
func (b *Builder[T]) Validate(value any) Result[T] {
	return b.v(value)
}

// Validator returns the composed validator for use wherever a plain
// Validator is expected.
func (b *Builder[T]) Validator() Validator[T] {
	return b.v
}
