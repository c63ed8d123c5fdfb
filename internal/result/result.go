package result

import (
	"fmt"
	"reflect"
)

// None is the value type of Results that succeed without carrying anything,
// such as a finished logging call or a zero exit code.
type None struct{}

// Result is an immutable success/failure container. The zero value is not
// meaningful; build Results with Ok, Empty or Fail.
type Result[T any] struct {
	value   T
	present bool
	detail  *Detail
}

// Ok returns a success carrying value.
func Ok[T any](value T) *Result[T] {
	return &Result[T]{value: value, present: true}
}

// Empty returns a success without a value.
func Empty[T any]() *Result[T] {
	return &Result[T]{}
}

// Done is shorthand for Empty[None]().
func Done() *Result[None] {
	return Empty[None]()
}

// Fail returns a failure carrying detail. A nil detail is replaced with a
// generic error so that a failure always explains itself.
func Fail[T any](detail *Detail) *Result[T] {
	if detail == nil {
		detail = NewError("failure without detail")
	}
	return &Result[T]{detail: detail}
}

// Success reports whether r is a success.
func (r *Result[T]) Success() bool {
	return r.detail == nil
}

// Value returns the success value and whether one is present. A value
// counts as absent when r is a failure, when r was built with Empty, or when
// the value is a nil pointer, map, slice, channel, func or interface.
func (r *Result[T]) Value() (T, bool) {
	if !r.Success() || !r.present || IsNil(r.value) {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Detail returns the failure detail, or nil for a success.
func (r *Result[T]) Detail() *Detail {
	return r.detail
}

// Err returns the failure detail as an error, or nil for a success. It
// bridges Results into code that propagates plain errors.
func (r *Result[T]) Err() error {
	if r.detail == nil {
		return nil
	}
	return r.detail
}

// String renders a success as Ok(value) or Ok() and a failure as its
// detail's full representation.
func (r *Result[T]) String() string {
	if r == nil {
		return "<nil>"
	}
	if !r.Success() {
		return r.detail.String()
	}
	if v, ok := r.Value(); ok {
		return fmt.Sprintf("Ok(%v)", v)
	}
	return "Ok()"
}

// OnValue calls fn with the value when r is a success with a value present.
// It returns r unchanged.
func (r *Result[T]) OnValue(fn func(T)) *Result[T] {
	if v, ok := r.Value(); ok {
		fn(v)
	}
	return r
}

// OnFailure calls fn with r when r is a failure. It returns r unchanged.
func (r *Result[T]) OnFailure(fn func(*Result[T])) *Result[T] {
	if !r.Success() {
		fn(r)
	}
	return r
}

// Then chains fn onto a success. A failure is carried over with its detail
// and fn is not called. fn receives the zero value for an Empty success.
func Then[T, U any](r *Result[T], fn func(T) *Result[U]) *Result[U] {
	if !r.Success() {
		return Fail[U](r.detail)
	}
	return fn(r.value)
}

// Map transforms the value of a success. Empty successes stay Empty.
func Map[T, U any](r *Result[T], fn func(T) U) *Result[U] {
	if !r.Success() {
		return Fail[U](r.detail)
	}
	if !r.present {
		return Empty[U]()
	}
	return Ok(fn(r.value))
}

// IsNil reports whether v is nil or a nil value of a nillable kind. It is
// used where an interface may hold a typed nil pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
