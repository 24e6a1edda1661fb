package result

import "errors"

// Collect gathers the payloads of rs in input order. Any failures are
// joined into a single Err covering all of them.
func Collect[T any](rs ...Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	var errs []error
	for _, r := range rs {
		v, err := r.Value()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}
	if len(errs) > 0 {
		return Err[[]T](errors.Join(errs...))
	}
	return Ok(values)
}

// Errors flattens a joined error into its parts; nil yields an empty
// slice and an unjoined error a single-element one.
func Errors(err error) []error {
	if err == nil {
		return []error{}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
