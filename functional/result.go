// Package functional provides the small set of value-level building blocks
// the refined types are defined in terms of: Result for fallible
// construction, Option for absence, and Pair for map entries.
//
// All three are plain value structs. Copying one copies the contained value;
// none of them ever holds both states at once.
package functional

// Result represents the outcome of an operation that may fail. It holds
// either a success value or an error.
//
// Refined-type constructors return a Result instead of an (T, error) pair so
// that validation failures never cross a public boundary as a bare error:
// callers must inspect the Result to get at the value.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value or panics on error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on Err: " + r.err.Error())
	}
	return r.value
}

// UnwrapErr returns the error or panics on success.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// Get returns the value and error in Go's conventional two-value form.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Match executes one of two functions based on Result state.
func (r Result[T]) Match(onOk func(T), onErr func(error)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

// ToOption converts Result to Option, discarding the error.
func (r Result[T]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// MapResult applies a transformation function to the success value.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// FlatMapResult applies a function that itself returns a Result.
func FlatMapResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}
