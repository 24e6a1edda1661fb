package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/mona/pkg/mona/maybe"
)

var errBoom = errors.New("boom")

func TestAndThen_MonadIdentity(t *testing.T) {
	t.Parallel()

	f := func(n int) Result[int] { return Ok(n * 2) }
	assert.Equal(t, f(21), Ok(21).AndThen(f))
}

func TestAndThen_Absorption(t *testing.T) {
	t.Parallel()

	called := false
	out := Err[int](errBoom).AndThen(func(n int) Result[int] {
		called = true
		return Ok(n)
	})

	assert.Equal(t, Err[int](errBoom), out)
	assert.False(t, called, "f must not run on the failure variant")
}

func TestAndThen_TypeChanging(t *testing.T) {
	t.Parallel()

	parse := func(s string) Result[int] {
		if s == "" {
			return Err[int](errBoom)
		}
		return Ok(len(s))
	}

	assert.Equal(t, Ok(3), AndThen(Ok("abc"), parse))
	assert.Equal(t, Err[int](errBoom), AndThen(Err[string](errBoom), parse))
}

func TestApply(t *testing.T) {
	t.Parallel()

	var seen []int
	out := Ok(7).Apply(func(n int) { seen = append(seen, n) })

	assert.Equal(t, Ok(7), out)
	assert.Equal(t, []int{7}, seen)

	Err[int](errBoom).Apply(func(n int) { seen = append(seen, n) })
	assert.Len(t, seen, 1)
}

func TestMap_FunctorLaws(t *testing.T) {
	t.Parallel()

	identity := func(n int) int { return n }
	f := func(n int) int { return n + 1 }
	g := func(n int) int { return n * 3 }

	for _, r := range []Result[int]{Ok(5), Err[int](errBoom)} {
		assert.Equal(t, r, r.Map(identity))
		assert.Equal(t, r.Map(f).Map(g), r.Map(func(n int) int { return g(f(n)) }))
	}
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	wrap := func(err error) error { return fmt.Errorf("wrapped: %w", err) }

	assert.Equal(t, Ok(2), Ok(2).MapErr(wrap))

	out := Err[int](errBoom).MapErr(wrap)
	require.True(t, out.IsErr())
	assert.ErrorIs(t, out.Err(), errBoom)
	assert.Equal(t, "wrapped: boom", out.Err().Error())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	var received error
	recovered := Err[int](errBoom).OrElse(func(err error) Result[int] {
		received = err
		return Ok(0)
	})

	assert.Equal(t, Ok(0), recovered)
	assert.Equal(t, errBoom, received)

	assert.Equal(t, Ok(2), Ok(2).OrElse(func(error) Result[int] { return Ok(9) }))
}

func TestOrTry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok(3), Err[int](errBoom).OrTry(func() (int, error) { return 3, nil }))

	errRetry := errors.New("retry failed")
	out := Err[int](errBoom).OrTry(func() (int, error) { return 0, errRetry })
	assert.Equal(t, Err[int](errRetry), out)

	called := false
	assert.Equal(t, Ok(1), Ok(1).OrTry(func() (int, error) {
		called = true
		return 3, nil
	}))
	assert.False(t, called)
}

func TestOrUse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok("x"), Err[string](errors.New("e")).OrUse("x"))
	assert.Equal(t, Ok(2), Ok(2).OrUse(9))
}

func TestOrRaise_ChainsCause(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Ok(2), Ok(2).OrRaise("error message"))

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		fe, ok := rec.(*FailureError)
		require.True(t, ok, "panic value should be *FailureError, got %T", rec)
		assert.Equal(t, "error message", fe.Message())
		assert.ErrorIs(t, fe, errBoom)
	}()
	Err[int](errBoom).OrRaise("error message")
}

func TestUnwrap_ChainsCause(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Ok(2).Unwrap())

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		fe, ok := rec.(*FailureError)
		require.True(t, ok)
		// the original failure payload is the causal origin
		assert.Equal(t, errBoom, fe.Unwrap())
		assert.ErrorIs(t, fe, errBoom)
	}()
	Err[int](errBoom).Unwrap()
}

func TestGet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Ok(2).Get(0))
	assert.Equal(t, 0, Err[int](errBoom).Get(0))
}

func TestValue_Destructure(t *testing.T) {
	t.Parallel()

	v, err := Ok("x").Value()
	assert.NoError(t, err)
	assert.Equal(t, "x", v)

	v, err = Err[string](errBoom).Value()
	assert.Equal(t, errBoom, err)
	assert.Equal(t, "", v)
}

func TestErr_EmptyFailures(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Ok(1).Err())
	assert.Equal(t, errBoom, Err[int](errBoom).Err())

	// a failure constructed without detail still reports one
	assert.Equal(t, ErrNoValue, Err[int](nil).Err())

	var zero Result[int]
	assert.True(t, zero.IsErr())
	assert.Equal(t, ErrNoValue, zero.Err())
}

func TestGuards(t *testing.T) {
	t.Parallel()

	assert.True(t, IsOk(Ok(2)))
	assert.False(t, IsErr(Ok(2)))
	assert.True(t, IsErr(Err[int](errBoom)))
	assert.False(t, IsOk(Err[int](errBoom)))

	// guards are total: foreign inputs classify as neither variant
	for _, foreign := range []any{maybe.Some("foo"), maybe.Nothing[int](), 0, "x", nil, errBoom} {
		assert.False(t, IsOk(foreign), "IsOk(%v)", foreign)
		assert.False(t, IsErr(foreign), "IsErr(%v)", foreign)
	}
}

func TestCast(t *testing.T) {
	t.Parallel()

	r := Ok[any]("payload")
	assert.Equal(t, Ok("payload"), Cast[string](r))
	assert.Equal(t, Err[string](errBoom), Cast[string](Err[any](errBoom)))

	assert.Panics(t, func() { Cast[int](r) })
}

func TestTransform(t *testing.T) {
	t.Parallel()

	describe := func(r Result[int]) string { return r.String() }
	assert.Equal(t, "Ok(2)", Transform(Ok(2), describe))
	assert.Equal(t, "Err(boom)", Transform(Err[int](errBoom), describe))
}

func TestFold(t *testing.T) {
	t.Parallel()

	onOk := func(n int) string { return "ok" }
	onErr := func(err error) string { return err.Error() }
	assert.Equal(t, "ok", Fold(Ok(1), onOk, onErr))
	assert.Equal(t, "boom", Fold(Err[int](errBoom), onOk, onErr))

	assert.Equal(t, 5, Ok(5).Fold(
		func(n int) int { return n },
		func(error) int { return -1 }))
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()

	if Ok(2) != Ok(2) {
		t.Fatalf("equal variants with equal payloads must compare equal")
	}
	if Ok(2) == Ok(3) {
		t.Fatalf("distinct payloads must not compare equal")
	}
	if Err[int](errBoom) != Err[int](errBoom) {
		t.Fatalf("failures holding the same error must compare equal")
	}
	if Ok(0) == Err[int](nil) {
		t.Fatalf("distinct variants must not compare equal")
	}
}

func TestValueSemantics(t *testing.T) {
	t.Parallel()

	r := Ok(2)
	_ = r.Map(func(n int) int { return n * 10 })
	assert.Equal(t, Ok(2), r)
}
