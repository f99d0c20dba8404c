package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsprojects/Chessie/pkg/rop"
)

func nonNegative(v int) (bool, string) {
	return v >= 0, "negative"
}

func even(v int) (bool, string) {
	return v%2 == 0, "odd"
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.True(t, rop.Equal(rop.Succeed[int, string](4), Validate(4, even)))
	assert.True(t, rop.Equal(rop.FailWith[int]("odd"), Validate(3, even)))
}

func TestAndValidate_KeepsWarningsAndSkipsOnFailure(t *testing.T) {
	t.Parallel()

	ok := AndValidate(rop.Succeed(2, "w"), even)
	assert.True(t, rop.Equal(rop.Succeed(2, "w"), ok))

	called := false
	bad := AndValidate(rop.FailWith[int]("earlier"), func(v int) (bool, string) {
		called = true
		return true, ""
	})
	assert.False(t, called)
	assert.Equal(t, []string{"earlier"}, bad.Errors())
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	t.Run("all pass", func(t *testing.T) {
		res := ValidateAll(rop.Succeed[int, string](10), true, nonNegative, even)
		assert.Equal(t, 10, res.SucceededWith())
	})

	t.Run("break on first", func(t *testing.T) {
		executed := 0
		count := func(check func(int) (bool, string)) func(int) (bool, string) {
			return func(v int) (bool, string) {
				executed++
				return check(v)
			}
		}
		res := ValidateAll(rop.Succeed[int, string](-1), true, count(nonNegative), count(even))
		assert.Equal(t, []string{"negative"}, res.FailedWith())
		assert.Equal(t, 1, executed)
	})

	t.Run("accumulate", func(t *testing.T) {
		res := ValidateAll(rop.Succeed[int, string](-3), false, nonNegative, nonNegative, even)
		assert.Equal(t, []string{"negative", "negative", "odd"}, res.FailedWith())
	})

	t.Run("initial failure passes through", func(t *testing.T) {
		res := ValidateAll(rop.FailWith[int]("initial"), false, nonNegative)
		assert.Equal(t, []string{"initial"}, res.FailedWith())
	})
}

func TestBind_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	called := false
	out := Bind(rop.FailWith[int]("e1"), func(v int) rop.Result[string, string] {
		called = true
		return rop.Succeed[string, string]("x")
	})

	assert.False(t, called, "Bind must not call onSuccess on a failure input")
	assert.True(t, rop.Equal(rop.FailWith[string]("e1"), out))
}

func TestBind_ConcatenatesWarnings(t *testing.T) {
	t.Parallel()

	out := Bind(rop.Succeed(1, "w1"), func(v int) rop.Result[string, string] {
		return rop.Succeed(strconv.Itoa(v+1), "w2")
	})
	assert.True(t, rop.Equal(rop.Succeed("2", "w1", "w2"), out))
}

func TestBind_DropsWarningsWhenStepFails(t *testing.T) {
	t.Parallel()

	out := Bind(rop.Succeed(1, "w1"), func(v int) rop.Result[int, string] {
		return rop.FailWith[int]("step failed")
	})
	assert.Equal(t, []string{"step failed"}, out.FailedWith())
}

func TestBind_Chain(t *testing.T) {
	t.Parallel()

	var steps []string
	concat := func(r1, r2, r3 rop.Result[string, string]) rop.Result[string, string] {
		return Bind(r1, func(a string) rop.Result[string, string] {
			steps = append(steps, "a")
			return Bind(r2, func(b string) rop.Result[string, string] {
				steps = append(steps, "b")
				return Map(r3, func(c string) string {
					steps = append(steps, "c")
					return a + b + c
				})
			})
		})
	}
	ok := func(v string, w ...string) rop.Result[string, string] { return rop.Succeed(v, w...) }
	fail := func(e string) rop.Result[string, string] { return rop.FailWith[string](e) }

	assert.True(t, rop.Equal(ok("123"), concat(ok("1"), ok("2"), ok("3"))))
	assert.Equal(t, []string{"a", "b", "c"}, steps)

	withMsgs := concat(ok("1", "msg1"), ok("2", "msg2"), ok("3", "msg3"))
	assert.True(t, rop.Equal(ok("123", "msg1", "msg2", "msg3"), withMsgs))

	steps = nil
	assert.Equal(t, []string{"fail"}, concat(fail("fail"), ok("2"), ok("3")).FailedWith())
	assert.Empty(t, steps)

	steps = nil
	assert.Equal(t, []string{"fail"}, concat(ok("1"), fail("fail"), ok("3")).FailedWith())
	assert.Equal(t, []string{"a"}, steps)

	steps = nil
	assert.Equal(t, []string{"fail1"}, concat(ok("1"), fail("fail1"), fail("fail2")).FailedWith())
}

func TestMap(t *testing.T) {
	t.Parallel()

	out := Map(rop.Succeed(5, "w"), func(v int) string { return "n:" + strconv.Itoa(v) })
	assert.True(t, rop.Equal(rop.Succeed("n:5", "w"), out))

	called := false
	bad := Map(rop.FailWith[int]("oops"), func(v int) string {
		called = true
		return "ignored"
	})
	assert.False(t, called)
	assert.Equal(t, []string{"oops"}, bad.FailedWith())
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	nested := rop.Succeed(rop.Succeed(1, "inner"), "outer")
	assert.True(t, rop.Equal(rop.Succeed(1, "outer", "inner"), Flatten(nested)))

	innerBad := rop.Succeed(rop.FailWith[int]("inner"), "outer")
	assert.Equal(t, []string{"inner"}, Flatten(innerBad).FailedWith())

	outerBad := rop.FailWith[rop.Result[int, string]]("outer")
	assert.Equal(t, []string{"outer"}, Flatten(outerBad).FailedWith())
}

func TestTry(t *testing.T) {
	t.Parallel()

	out := Try(rop.Succeed[string, error]("42"), strconv.Atoi)
	require.True(t, out.IsSuccess())
	assert.Equal(t, 42, out.SucceededWith())

	bad := Try(rop.Succeed[string, error]("x"), strconv.Atoi)
	require.True(t, bad.IsFailure())
	var numErr *strconv.NumError
	assert.ErrorAs(t, bad.FailedWith()[0], &numErr)

	earlier := errors.New("earlier")
	called := false
	skipped := Try(rop.FailWith[string](earlier), func(s string) (int, error) {
		called = true
		return 0, nil
	})
	assert.False(t, called)
	assert.Equal(t, []error{earlier}, skipped.FailedWith())
}

func TestFailOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := FailOnError(rop.Succeed[int, error](1), func(int) error { return boom })
	assert.Equal(t, []error{boom}, out.FailedWith())

	same := FailOnError(rop.Succeed[int, error](1), func(int) error { return nil })
	assert.Equal(t, 1, same.SucceededWith())
}

type parseErr struct{}

func (*parseErr) Error() string { return "parse" }

func TestTypedNilErrorIsSuccess(t *testing.T) {
	t.Parallel()

	var none *parseErr

	tried := Try(rop.Succeed[string, error]("x"), func(s string) (int, error) { return len(s), none })
	assert.Equal(t, 1, tried.SucceededWith())

	checked := FailOnError(rop.Succeed[int, error](2), func(int) error { return none })
	assert.Equal(t, 2, checked.SucceededWith())
}

func TestTee(t *testing.T) {
	t.Parallel()

	seen := 0
	r := Tee(rop.Succeed[int, string](11), func(v int) { seen = v })
	assert.Equal(t, 11, seen)
	assert.Equal(t, 11, r.SucceededWith())

	seen = 0
	Tee(rop.FailWith[int]("x"), func(v int) { seen = 1 })
	assert.Equal(t, 0, seen)

	TeeIf(rop.Succeed[int, string](3), func(v int) bool { return v > 5 }, func(v int) { seen = v })
	assert.Equal(t, 0, seen)
	TeeIf(rop.Succeed[int, string](7), func(v int) bool { return v > 5 }, func(v int) { seen = v })
	assert.Equal(t, 7, seen)
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()

	var gotWarnings, gotErrs []string
	onSuccess := func(v int, w []string) { gotWarnings = w }
	onError := func(errs []string) { gotErrs = errs }

	DoubleTee(rop.Succeed(1, "w"), onSuccess, onError)
	assert.Equal(t, []string{"w"}, gotWarnings)
	assert.Nil(t, gotErrs)

	DoubleTee(rop.FailWith[int]("e"), onSuccess, onError)
	assert.Equal(t, []string{"e"}, gotErrs)
}

func TestDoubleMapAndMapFailure(t *testing.T) {
	t.Parallel()

	out := DoubleMap(rop.Succeed(2, 10, 20), func(v int) int { return v * 2 }, strconv.Itoa)
	assert.True(t, rop.Equal(rop.Succeed(4, "10", "20"), out))

	bad := MapFailure(rop.FailWith[int](1, 2), func(code int) error {
		return errors.New("code " + strconv.Itoa(code))
	})
	require.True(t, bad.IsFailure())
	require.Len(t, bad.FailedWith(), 2)
	assert.EqualError(t, bad.FailedWith()[1], "code 2")
}
