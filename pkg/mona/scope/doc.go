// Package scope defines the acquire/release protocol used by the
// containers' scoped pass-through.
//
// A Resource is a value with paired Enter/Exit procedures. Wrapping a
// Resource in a container and passing it through maybe.With or result.With
// guarantees Exit runs exactly once when the scope ends, on every exit
// path, while the absent/failure variants acquire and release nothing.
package scope
