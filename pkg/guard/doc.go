// Package guard provides composable runtime validation for untyped data:
// small pure predicates (guards) and detailed validators that can be
// combined into object schemas, array rules, unions and conditionals.
//
// Two forms of rule exist, and the form is fixed when the rule is built:
//
//   - Guard: a predicate func(any) bool. Cheap, may short-circuit on the
//     first failure, answers only yes or no.
//   - Validator[T]: returns a Result[T] carrying typed data and every
//     accumulated error message. Never short-circuits.
//
// FromGuard bridges the two explicitly; nothing inspects a rule's shape at
// call time.
//
// # Primitives
//
// The package ships predicates for the shapes untyped payloads are made of:
//
//	guard.IsString("hi")                                  // true
//	guard.IsNumber(42)                                    // true
//	guard.IsUUID("123e4567-e89b-12d3-a456-426614174000")  // true
//	guard.IsEmail("user@example.com")                     // true
//
// # Object schemas
//
// Object schemas are closed, ordered property lists: the field set is known
// statically, and fields are checked in declaration order:
//
//	isUser := guard.Object([]guard.Property{
//		{Name: "id", Guard: guard.IsUUID, Required: true},
//		{Name: "name", Guard: guard.IsString, Required: true},
//		{Name: "age", Guard: guard.IsInt},
//	}, guard.ObjectConfig{Strict: true})
//
//	isUser(map[string]any{"id": id, "name": "alice"}) // true
//	isUser(map[string]any{"name": "alice"})           // false: id missing
//
// The detailed form collects every problem instead of stopping at the first:
//
//	validate := guard.ObjectValidator(props, cfg)
//	res := validate(input)
//	if !res.Valid {
//		for _, msg := range res.Errors {
//			// `property "id": value is required`, ...
//		}
//	}
//
// # Composition
//
// Guards compose freely:
//
//	stringOrNumber := guard.Union(guard.IsString, guard.IsNumber)
//	status := guard.Literal("active", "archived")
//	maybeTags := guard.Nullable(guard.Array(guard.IsString, guard.ArrayConfig{}))
//	settings := guard.Record(guard.IsBool, nil) // string keys, bool values
//	point := guard.Tuple(guard.IsNumber, guard.IsNumber)
//
// Expensive guards can be memoized or built on demand:
//
//	fast := guard.Cached(slowGuard, 256)
//	deferred := guard.Lazy(func() guard.Guard { return buildSchema() })
//
// # Builder
//
// Builder chains post-validation behavior onto a validator. Builders are
// immutable; every call returns a new builder:
//
//	email := guard.NewBuilderFromGuard[string](guard.IsEmail).
//		Optional().
//		Transform(func(s string) (string, error) {
//			return strings.ToLower(s), nil
//		})
//
//	res := email.Validate("User@Example.com") // Data: "user@example.com"
//
// # Purity
//
// Every combinator in this package is pure: identical input yields an
// identical verdict. The caching layers in pkg/perf and pkg/cache rely on
// this property for correctness, so custom guards fed into them must uphold
// it too.
package guard
