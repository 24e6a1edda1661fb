package mona

import (
	"reflect"

	"github.com/ib-77/mona/pkg/mona/maybe"
	"github.com/ib-77/mona/pkg/mona/result"
)

// FromPtr maps a nil pointer to Nothing and a non-nil one to Some of the
// pointed-to value.
func FromPtr[T any](p *T) maybe.Maybe[T] {
	if p == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Some(*p)
}

// FromNillable lifts values whose type can hold nil: interfaces,
// pointers, maps, slices, channels and funcs. Nil becomes Nothing,
// anything else Some(v).
func FromNillable[T any](v T) maybe.Maybe[T] {
	if isNil(v) {
		return maybe.Nothing[T]()
	}
	return maybe.Some(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IntoMaybe keeps the success payload and discards the failure detail.
func IntoMaybe[T any](r result.Result[T]) maybe.Maybe[T] {
	if v, err := r.Value(); err == nil {
		return maybe.Some(v)
	}
	return maybe.Nothing[T]()
}

// IntoResult maps presence to Ok and absence to Err(result.ErrNoValue);
// an absent Maybe carries no failure detail to synthesize.
func IntoResult[T any](m maybe.Maybe[T]) result.Result[T] {
	if v, ok := m.Value(); ok {
		return result.Ok(v)
	}
	return result.Err[T](result.ErrNoValue)
}
