// Package result provides the fallible container Result[T]: a closed sum
// of a success variant (Ok) holding one immutable payload and a failure
// variant (Err) holding an error describing what went wrong.
//
// Highlights:
// - Ok/Err: construct Result[T]; the zero value is an empty failure
// - AndThen/Map/MapErr/Apply: compose on success, carry failures through
// - OrElse/OrTry/OrUse: recover from failure
// - Get/Unwrap/OrRaise/Value: leave the container
// - Catch/Wrap/Try: bridge panics and (T, error) returns into Results
// - Collect/Errors: aggregate many results and flatten joined failures
// - IsOk/IsErr: total guards, safe on foreign values
// - Enter/Exit/With: scoped-resource pass-through
//
// Unwrap and OrRaise are the only raising operations; the panic value is
// a *FailureError whose cause is the original failure payload, so
// errors.Is and errors.As see through it.
package result
