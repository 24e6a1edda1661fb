package result

import (
	"errors"
	"fmt"
)

// ErrNoValue is the failure detail reported when none was supplied: the
// zero value, Err(nil) and conversions from an absent optional all carry
// it.
var ErrNoValue = errors.New("result: no value")

// Result is a success-or-failure value: Ok holding a payload or Err
// holding an error. The zero value is an empty failure. Values are
// immutable; every combinator returns a fresh container. Equality is
// structural on variant + payload, so == works whenever T is comparable.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// AndThen returns f(v) on success; failures pass through and f is not
// invoked.
func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	if !r.ok {
		return r
	}
	return f(r.value)
}

// Apply invokes f(v) for its side effect and returns the container
// unchanged; no-op on failure.
func (r Result[T]) Apply(f func(T)) Result[T] {
	if r.ok {
		f(r.value)
	}
	return r
}

func (r Result[T]) Map(f func(T) T) Result[T] {
	if !r.ok {
		return r
	}
	return Ok(f(r.value))
}

// MapErr transforms the failure payload; no-op on success.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.ok {
		return r
	}
	return Err[T](f(r.Err()))
}

func (r Result[T]) OrElse(f func(error) Result[T]) Result[T] {
	if r.ok {
		return r
	}
	return f(r.Err())
}

// OrTry calls f on failure: a nil error wraps the value Ok, a non-nil
// error becomes the new failure payload unmodified.
func (r Result[T]) OrTry(f func() (T, error)) Result[T] {
	if r.ok {
		return r
	}
	v, err := f()
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

func (r Result[T]) OrUse(v T) Result[T] {
	if r.ok {
		return r
	}
	return Ok(v)
}

// OrRaise panics with *FailureError on failure, causally chained to the
// failure payload; msg may be empty.
func (r Result[T]) OrRaise(msg string) Result[T] {
	if !r.ok {
		panic(&FailureError{msg: msg, cause: r.Err()})
	}
	return r
}

// Unwrap returns the payload, panicking with *FailureError on failure.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(&FailureError{cause: r.Err()})
	}
	return r.value
}

func (r Result[T]) Get(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// Value is the destructuring contract: the payload and the failure
// detail, exactly one of which is meaningful.
func (r Result[T]) Value() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.Err()
	}
	return r.value, nil
}

// Err returns the failure detail, nil on success. A failure constructed
// without detail reports ErrNoValue.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return ErrNoValue
	}
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

func (r Result[T]) Fold(onOk func(T) T, onErr func(error) T) T {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.Err())
}

func (r Result[T]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.Err())
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

func (r Result[T]) isSuccess() bool {
	return r.ok
}

type classifier interface {
	isSuccess() bool
}

// IsOk classifies any value: true only for a successful Result of any
// payload type, false (never a panic) for everything else.
func IsOk(v any) bool {
	r, ok := v.(classifier)
	return ok && r.isSuccess()
}

// IsErr classifies any value: true only for a failed Result.
func IsErr(v any) bool {
	r, ok := v.(classifier)
	return ok && !r.isSuccess()
}

// AndThen is the type-changing form of Result.AndThen.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	v, err := r.Value()
	if err != nil {
		return Err[U](err)
	}
	return f(v)
}

// Map is the type-changing form of Result.Map.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	v, err := r.Value()
	if err != nil {
		return Err[U](err)
	}
	return Ok(f(v))
}

// Cast reinterprets the payload type without a conversion function. The
// caller vouches that the payload is a U; a wrong cast panics.
func Cast[U, T any](r Result[T]) Result[U] {
	v, err := r.Value()
	if err != nil {
		return Err[U](err)
	}
	return Ok(any(v).(U))
}

// Transform hands the whole container to f, for either variant.
func Transform[T, U any](r Result[T], f func(Result[T]) U) U {
	return f(r)
}

// Fold reduces the container to a plain value via one of two handlers.
func Fold[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	v, err := r.Value()
	if err != nil {
		return onErr(err)
	}
	return onOk(v)
}
