package maybe

import "fmt"

// NothingError reports an unwrap of the absent variant.
type NothingError struct {
	msg string
}

func (e *NothingError) Error() string {
	if e.msg == "" {
		return "maybe: nothing"
	}
	return "maybe: nothing: " + e.msg
}

// Message returns the message passed to OrRaise, if any.
func (e *NothingError) Message() string {
	return e.msg
}

// Maybe is an optional value: Some holding a payload or Nothing holding
// none. The zero value is Nothing. Values are immutable; every combinator
// returns a fresh container. Equality is structural on variant + payload,
// so == works whenever T is comparable.
type Maybe[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// AndThen returns f(v) when present; Nothing passes through and f is not
// invoked.
func (m Maybe[T]) AndThen(f func(T) Maybe[T]) Maybe[T] {
	if !m.present {
		return m
	}
	return f(m.value)
}

// Apply invokes f(v) for its side effect and returns the container
// unchanged; no-op when absent.
func (m Maybe[T]) Apply(f func(T)) Maybe[T] {
	if m.present {
		f(m.value)
	}
	return m
}

func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if !m.present {
		return m
	}
	return Some(f(m.value))
}

func (m Maybe[T]) OrElse(f func() Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return f()
}

// OrTry calls f when absent and wraps its value Some. Panics raised by f
// are not intercepted.
func (m Maybe[T]) OrTry(f func() T) Maybe[T] {
	if m.present {
		return m
	}
	return Some(f())
}

func (m Maybe[T]) OrUse(v T) Maybe[T] {
	if m.present {
		return m
	}
	return Some(v)
}

// OrRaise panics with *NothingError when absent; msg may be empty.
func (m Maybe[T]) OrRaise(msg string) Maybe[T] {
	if !m.present {
		panic(&NothingError{msg: msg})
	}
	return m
}

// Unwrap returns the payload, panicking with *NothingError when absent.
func (m Maybe[T]) Unwrap() T {
	if !m.present {
		panic(&NothingError{})
	}
	return m.value
}

func (m Maybe[T]) Get(def T) T {
	if !m.present {
		return def
	}
	return m.value
}

// Value is the destructuring contract: the payload and a presence flag.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.present
}

func (m Maybe[T]) IsSome() bool {
	return m.present
}

func (m Maybe[T]) IsNothing() bool {
	return !m.present
}

func (m Maybe[T]) Fold(onSome func(T) T, onNothing func() T) T {
	if m.present {
		return onSome(m.value)
	}
	return onNothing()
}

func (m Maybe[T]) String() string {
	if !m.present {
		return "Nothing()"
	}
	return fmt.Sprintf("Some(%v)", m.value)
}

func (m Maybe[T]) isPresent() bool {
	return m.present
}

type classifier interface {
	isPresent() bool
}

// IsSome classifies any value: true only for a present Maybe of any
// payload type, false (never a panic) for everything else.
func IsSome(v any) bool {
	m, ok := v.(classifier)
	return ok && m.isPresent()
}

// IsNothing classifies any value: true only for an absent Maybe.
func IsNothing(v any) bool {
	m, ok := v.(classifier)
	return ok && !m.isPresent()
}

// AndThen is the type-changing form of Maybe.AndThen.
func AndThen[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	if v, ok := m.Value(); ok {
		return f(v)
	}
	return Nothing[U]()
}

// Map is the type-changing form of Maybe.Map.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if v, ok := m.Value(); ok {
		return Some(f(v))
	}
	return Nothing[U]()
}

// Cast reinterprets the payload type without a conversion function. The
// caller vouches that the payload is a U; a wrong cast panics.
func Cast[U, T any](m Maybe[T]) Maybe[U] {
	if v, ok := m.Value(); ok {
		return Some(any(v).(U))
	}
	return Nothing[U]()
}

// Transform hands the whole container to f, for either variant.
func Transform[T, U any](m Maybe[T], f func(Maybe[T]) U) U {
	return f(m)
}

// Fold reduces the container to a plain value via one of two handlers.
func Fold[T, U any](m Maybe[T], onSome func(T) U, onNothing func() U) U {
	if v, ok := m.Value(); ok {
		return onSome(v)
	}
	return onNothing()
}
