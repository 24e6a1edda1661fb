package trace

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/mona/pkg/mona/result"
)

// Stamped is a Result carrying a provenance stamp.
type Stamped[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	res       result.Result[T]
}

func New[T any](r result.Result[T]) Stamped[T] {
	return Stamped[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
	}
}

// Of stamps a plain value as a successful result.
func Of[T any](v T) Stamped[T] {
	return New(result.Ok(v))
}

func (s Stamped[T]) ID() uuid.UUID {
	return s.id
}

// CreatedAt is the stamp creation time (UTC).
func (s Stamped[T]) CreatedAt() time.Time {
	return s.createdAt
}

func (s Stamped[T]) Result() result.Result[T] {
	return s.res
}

func (s Stamped[T]) Elapsed() time.Duration {
	return time.Since(s.createdAt)
}

// Then applies f on success, keeping the stamp.
func (s Stamped[T]) Then(f func(T) result.Result[T]) Stamped[T] {
	s.res = s.res.AndThen(f)
	return s
}

// Map transforms the successful value, keeping the stamp.
func (s Stamped[T]) Map(f func(T) T) Stamped[T] {
	s.res = s.res.Map(f)
	return s
}

func (s Stamped[T]) String() string {
	return fmt.Sprintf("%s %s", s.id, s.res)
}

// Switch moves the stamp onto a result of a different payload type.
func Switch[In, Out any](s Stamped[In], f func(In) result.Result[Out]) Stamped[Out] {
	return Stamped[Out]{
		id:        s.id,
		createdAt: s.createdAt,
		res:       result.AndThen(s.res, f),
	}
}
