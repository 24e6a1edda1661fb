// Package flow provides a fluent Pipe[T] for synchronous composition of
// result.Result[T] values.
//
// It keeps the API surface small:
// - Start/FromValue: create a Pipe
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - While: repeat a step as long as a predicate holds
// - Or/And: pick between alternative or required pipes
// - Finally: reduce to a concrete value via handlers
//
// Pipe is ideal where lightweight chaining improves readability over
// branching on each intermediate result.
package flow
