package maybe

import "github.com/ib-77/mona/pkg/mona/scope"

// Enter acquires the wrapped resource and rewraps the guarded value Some.
// The absent variant passes through without acquiring anything.
func Enter[U any](m Maybe[scope.Resource[U]]) Maybe[U] {
	if r, ok := m.Value(); ok {
		return Some(r.Enter())
	}
	return Nothing[U]()
}

// Exit releases the wrapped resource; no-op when absent.
func Exit[U any](m Maybe[scope.Resource[U]]) {
	if r, ok := m.Value(); ok {
		r.Exit()
	}
}

// With acquires the resource, runs f on the rewrapped value and releases
// exactly once when f returns, on every exit path including a panic out
// of f. The absent variant reaches f as Nothing and releases nothing.
func With[U, V any](m Maybe[scope.Resource[U]], f func(Maybe[U]) V) V {
	r, ok := m.Value()
	if !ok {
		return f(Nothing[U]())
	}
	u := r.Enter()
	defer r.Exit()
	return f(Some(u))
}
