// Package result defines the success/failure container used by the
// docker-entrypoint helpers in place of panics or bare errors for expected
// failure paths.
//
// A Result[T] is exactly one of:
//   - Ok(value): a success that carries a value
//   - Empty():   a success without a value
//   - Fail(d):   a failure carrying a *Detail
//
// Results are immutable once constructed. Branching is explicit: callers use
// the combinators (OnValue, OnFailure, Then, Map) rather than relying on
// implicit short-circuiting. Type-changing combinators are package functions
// because Go methods cannot declare their own type parameters.
package result
