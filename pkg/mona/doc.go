// Package mona ties the optional and fallible containers together with
// cross-type converters and function currying. It is built purely on the
// public contracts of the maybe and result packages.
//
// Key helpers:
// - Curry/Curry2/Curry3: swap data-first calls into data-last staging
// - FromPtr/FromNillable: lift nullable values into Maybe
// - IntoMaybe: Result -> Maybe, dropping the failure detail
// - IntoResult: Maybe -> Result, absence becomes result.ErrNoValue
package mona
