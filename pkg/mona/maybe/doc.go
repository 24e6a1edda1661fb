// Package maybe provides the optional container Maybe[T]: a closed sum of
// a present variant (Some) holding one immutable payload and an absent
// variant (Nothing) holding none.
//
// Highlights:
// - Some/Nothing: construct Maybe[T]; the zero value is Nothing
// - AndThen/Map/Apply: compose on presence, pass Nothing through
// - OrElse/OrTry/OrUse: recover from absence
// - Get/Unwrap/OrRaise/Value: leave the container
// - IsSome/IsNothing: total guards, safe on foreign values
// - Enter/Exit/With: scoped-resource pass-through
//
// Type-changing combinators (T -> U) are package-level functions because
// methods cannot introduce type parameters; the same-type forms are
// methods.
package maybe
