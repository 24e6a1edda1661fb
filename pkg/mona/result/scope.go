package result

import "github.com/ib-77/mona/pkg/mona/scope"

// Enter acquires the wrapped resource and rewraps the guarded value Ok.
// The failure variant passes through without acquiring anything.
func Enter[U any](r Result[scope.Resource[U]]) Result[U] {
	res, err := r.Value()
	if err != nil {
		return Err[U](err)
	}
	return Ok(res.Enter())
}

// Exit releases the wrapped resource; no-op on failure.
func Exit[U any](r Result[scope.Resource[U]]) {
	if res, err := r.Value(); err == nil {
		res.Exit()
	}
}

// With acquires the resource, runs f on the rewrapped value and releases
// exactly once when f returns, on every exit path including a panic out
// of f. The failure variant reaches f as Err and releases nothing.
func With[U, V any](r Result[scope.Resource[U]], f func(Result[U]) V) V {
	res, err := r.Value()
	if err != nil {
		return f(Err[U](err))
	}
	u := res.Enter()
	defer res.Exit()
	return f(Ok(u))
}
