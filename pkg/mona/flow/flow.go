package flow

import "github.com/ib-77/mona/pkg/mona/result"

type Pipe[T any] struct {
	res result.Result[T]
}

func Start[T any](r result.Result[T]) Pipe[T] {
	return Pipe[T]{res: r}
}

func FromValue[T any](v T) Pipe[T] {
	return Start(result.Ok(v))
}

func (p Pipe[T]) Result() result.Result[T] {
	return p.res
}

// Then composes functions that already return result.Result[T]
func (p Pipe[T]) Then(onOk func(t T) result.Result[T]) Pipe[T] {
	if p.res.IsErr() {
		return p
	}
	return Pipe[T]{res: onOk(p.res.Unwrap())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (p Pipe[T]) ThenTry(try func(t T) (T, error)) Pipe[T] {
	if p.res.IsErr() {
		return p
	}
	return Pipe[T]{res: result.Try(try(p.res.Unwrap()))}
}

// Map transforms the successful value to a new value
func (p Pipe[T]) Map(onOk func(t T) T) Pipe[T] {
	if p.res.IsErr() {
		return p
	}
	return Pipe[T]{res: result.Ok(onOk(p.res.Unwrap()))}
}

// Ensure triggers side effects for success/failure without changing the
// result
func (p Pipe[T]) Ensure(onOk func(T), onErr func(error)) Pipe[T] {
	if p.res.IsErr() {
		if onErr != nil {
			onErr(p.res.Err())
		}
		return p
	}
	if onOk != nil {
		onOk(p.res.Unwrap())
	}
	return p
}

func (p Pipe[T]) While(onOk func(t T) result.Result[T], while func(t T) bool) Pipe[T] {
	for p.res.IsOk() && while(p.res.Unwrap()) {
		p = p.Then(onOk)
	}
	return p
}

func (p Pipe[T]) RepeatUntil(onOk func(t T) result.Result[T], until func(t T) bool) Pipe[T] {
	if p.res.IsErr() {
		return p
	}
	for {
		p = p.Then(onOk)
		if p.res.IsErr() || until(p.res.Unwrap()) {
			return p
		}
	}
}

func (p Pipe[T]) Or(alternative Pipe[T]) Pipe[T] {
	return p.or(alternative)
}

// or returns the first successful candidate, else the first failure.
func (p Pipe[T]) or(pipes ...Pipe[T]) Pipe[T] {
	candidates := make([]Pipe[T], 0, len(pipes)+1)
	candidates = append(candidates, p)
	candidates = append(candidates, pipes...)

	for _, c := range candidates {
		if c.res.IsOk() {
			return c
		}
	}
	return p
}

func (p Pipe[T]) And(required Pipe[T]) Pipe[T] {
	return p.and(required)
}

// and returns the first failure, else the last candidate.
func (p Pipe[T]) and(pipes ...Pipe[T]) Pipe[T] {
	candidates := make([]Pipe[T], 0, len(pipes)+1)
	candidates = append(candidates, p)
	candidates = append(candidates, pipes...)

	last := p
	for _, c := range candidates {
		if c.res.IsErr() {
			return c
		}
		last = c
	}
	return last
}

// Finally collapses the pipe to a final value, delegating to result.Fold
func Finally[T, U any](p Pipe[T], onOk func(T) U, onErr func(error) U) U {
	return result.Fold(p.Result(), onOk, onErr)
}

// Switch moves a pipe to a new payload type via a result-returning
// function.
func Switch[In, Out any](p Pipe[In], onOk func(In) result.Result[Out]) Pipe[Out] {
	return Start(result.AndThen(p.Result(), onOk))
}
