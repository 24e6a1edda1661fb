package mona

// Curry turns a data-first f(subject, aux) into data-last staging: the
// auxiliary argument comes first and yields a single-parameter function
// awaiting the subject, ready for point-free use with Map or AndThen.
func Curry[V, A, U any](f func(V, A) U) func(A) func(V) U {
	return func(a A) func(V) U {
		return func(v V) U {
			return f(v, a)
		}
	}
}

// Curry2 is Curry for two auxiliary arguments.
func Curry2[V, A, B, U any](f func(V, A, B) U) func(A, B) func(V) U {
	return func(a A, b B) func(V) U {
		return func(v V) U {
			return f(v, a, b)
		}
	}
}

// Curry3 is Curry for three auxiliary arguments.
func Curry3[V, A, B, C, U any](f func(V, A, B, C) U) func(A, B, C) func(V) U {
	return func(a A, b B, c C) func(V) U {
		return func(v V) U {
			return f(v, a, b, c)
		}
	}
}
