package result

import "errors"

// ErrClass decides whether a panicked error belongs to a capturable
// class.
type ErrClass func(error) bool

// Is matches errors for which errors.Is(err, target) holds.
func Is(target error) ErrClass {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// As matches errors whose chain contains a concrete E.
func As[E error]() ErrClass {
	return func(err error) bool {
		var e E
		return errors.As(err, &e)
	}
}

// Catch runs f and wraps its return value Ok. A panic whose value is an
// error matching one of the listed classes is captured as Err holding
// that exact error; any other panic resumes unmodified. With no classes
// nothing is caught. This is the sole bridge from panic-based failure
// into the container, and it is intentionally strict: there is no
// catch-all.
func Catch[T any](f func() T, classes ...ErrClass) (res Result[T]) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		err, ok := rec.(error)
		if !ok {
			panic(rec)
		}
		for _, match := range classes {
			if match(err) {
				res = Err[T](err)
				return
			}
		}
		panic(rec)
	}()
	return Ok(f())
}

// OrCatch calls f on failure with Catch semantics: a panic in one of the
// listed classes becomes the new failure, anything else resumes. Success
// passes through and f is not invoked.
func (r Result[T]) OrCatch(f func() T, classes ...ErrClass) Result[T] {
	if r.ok {
		return r
	}
	return Catch(f, classes...)
}

// Wrap converts fn into a Result-returning function with Catch
// semantics.
func Wrap[A, T any](fn func(A) T, classes ...ErrClass) func(A) Result[T] {
	return func(a A) Result[T] {
		return Catch(func() T { return fn(a) }, classes...)
	}
}

// Wrap2 is Wrap for two-argument functions.
func Wrap2[A, B, T any](fn func(A, B) T, classes ...ErrClass) func(A, B) Result[T] {
	return func(a A, b B) Result[T] {
		return Catch(func() T { return fn(a, b) }, classes...)
	}
}

// Try adapts Go's native value-or-error return into a Result:
// Try(strconv.Atoi(s)).
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}
