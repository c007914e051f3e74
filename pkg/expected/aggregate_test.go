package expected

import (
	"errors"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_AllOk(t *testing.T) {
	t.Parallel()

	r := Aggregate3(Ok[int, string](1), Ok[int, string](2), Ok[int, string](3))
	require.True(t, r.IsOk())
	assert.Equal(t, lo.T3(1, 2, 3), r.Unwrap())
}

func TestAggregate_FirstErrorWins(t *testing.T) {
	t.Parallel()

	r := Aggregate3(Ok[int, string](1), Err[int]("a"), Err[int]("b"))
	assert.True(t, EqualUnexpect(r, Fail("a")))

	r2 := Aggregate2(Err[int]("first"), Err[string]("second"))
	assert.Equal(t, "first", r2.UnwrapErr())
}

func TestAggregate_MixedTypes(t *testing.T) {
	t.Parallel()

	r := Aggregate4(Ok[int, error](1), Ok[string, error]("two"), Ok[bool, error](true), Ok[float64, error](4.5))
	require.True(t, r.IsOk())
	a, b, c, d := r.Unwrap().Unpack()
	assert.Equal(t, 1, a)
	assert.Equal(t, "two", b)
	assert.True(t, c)
	assert.InDelta(t, 4.5, d, 0.0001)

	failed := Aggregate4(Ok[int, error](1), Ok[string, error]("two"), Ok[bool, error](true), Err[float64](errors.New("last")))
	assert.EqualError(t, failed.UnwrapErr(), "last")
}

func TestAggregateAll(t *testing.T) {
	t.Parallel()

	ok := AggregateAll(Ok[int, string](1), Ok[int, string](2), Ok[int, string](3))
	assert.Equal(t, []int{1, 2, 3}, ok.Unwrap())

	bad := AggregateAll(Ok[int, string](1), Err[int]("a"), Err[int]("b"))
	assert.Equal(t, "a", bad.UnwrapErr())

	empty := AggregateAll[int, string]()
	require.True(t, empty.IsOk())
	assert.Empty(t, empty.Unwrap())
}

func TestAggregateInto(t *testing.T) {
	t.Parallel()

	join := func(parts []string) string { return strings.Join(parts, "-") }

	r := AggregateInto(join, Ok[string, int]("a"), Ok[string, int]("b"))
	assert.True(t, EqualValue(r, "a-b"))

	bad := AggregateInto(join, Ok[string, int]("a"), Err[string](2), Err[string](3))
	assert.True(t, EqualUnexpect(bad, Fail(2)))
}

func TestJoinErrors(t *testing.T) {
	t.Parallel()

	errA, errB := errors.New("a"), errors.New("b")

	r := JoinErrors(Ok[int, error](1), Err[int](errA), Err[int](errB))
	require.True(t, r.IsErr())
	assert.ErrorIs(t, r.UnwrapErr(), errA)
	assert.ErrorIs(t, r.UnwrapErr(), errB)
	assert.Len(t, GetErrors(r.UnwrapErr()), 2)

	ok := JoinErrors(Ok[int, error](1), Ok[int, error](2))
	assert.Equal(t, []int{1, 2}, ok.Unwrap())
}

func TestAllOk(t *testing.T) {
	t.Parallel()

	assert.True(t, AllOk())
	assert.True(t, AllOk(Ok[int, string](1), Ok[string, error]("x")))
	assert.False(t, AllOk(Ok[int, string](1), Err[bool](errors.New("x"))))
}
