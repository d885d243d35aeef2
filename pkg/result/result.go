package result

import "fmt"

// Result holds either a success value of type T or a failure error, never
// both. The zero value is a success holding T's zero value; use Ok and Err
// to construct meaningful instances.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok constructs a success Result wrapping value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err constructs a failure Result wrapping err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result holds a failure.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// MustGet returns the success value and panics on a failure Result. It is
// reserved for the outermost boundary of the program; everything beneath the
// CLI composes with Map, FlatMap and Match instead.
func (r Result[T]) MustGet() T {
	if !r.ok {
		panic(fmt.Sprintf("result: MustGet called on failure: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the failure and panics on a success Result.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("result: UnwrapErr called on success")
	}
	return r.err
}

// MapErr transforms the failure with f, passing a success through untouched.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](f(r.err))
}

// Map applies f to the success value, producing a Result of the mapped type.
// A failure is passed through with the same error value.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.IsErr() {
		return Err[U](r.err)
	}
	return Ok(f(r.value))
}

// FlatMap applies f, itself fallible, to the success value. The first
// failure in a FlatMap chain short-circuits the rest.
func FlatMap[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.IsErr() {
		return Err[U](r.err)
	}
	return f(r.value)
}

// Match eliminates the Result into a common type by calling exactly one of
// onOk or onErr. It is the sanctioned way to unwrap without risking a panic.
func Match[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.IsErr() {
		return onErr(r.err)
	}
	return onOk(r.value)
}
