package expected

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTuple(t *testing.T) {
	t.Parallel()

	n, err := strconv.Atoi("12")
	ok := FromTuple(n, err)
	assert.True(t, EqualValue(ok, 12))

	n, err = strconv.Atoi("x")
	bad := FromTuple(n, err)
	require.True(t, bad.IsErr())
	var numErr *strconv.NumError
	assert.ErrorAs(t, bad.UnwrapErr(), &numErr)

	v, err := ToTuple(ok)
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = ToTuple(bad)
	assert.Error(t, err)
}

func TestTry(t *testing.T) {
	t.Parallel()

	r := Try(func() (string, error) { return "", fmt.Errorf("wrapped: %w", context.Canceled) })
	require.True(t, r.IsErr())
	assert.True(t, IsCancellationError(r.UnwrapErr()))

	assert.True(t, EqualValue(Try(func() (string, error) { return "v", nil }), "v"))
}

func TestFromOption(t *testing.T) {
	t.Parallel()

	assert.True(t, EqualValue(FromOption(mo.Some(1), "absent"), 1))
	assert.True(t, EqualUnexpect(FromOption(mo.None[int](), "absent"), Fail("absent")))
}

func TestMoInterop(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	assert.True(t, EqualValue(FromMo(mo.Ok(3)), 3))
	assert.ErrorIs(t, FromMo(mo.Err[int](boom)).UnwrapErr(), boom)

	m := ToMo(Ok[int, error](3))
	require.True(t, m.IsOk())
	assert.Equal(t, 3, m.MustGet())

	m = ToMo(Err[int](boom))
	require.True(t, m.IsError())
	assert.ErrorIs(t, m.Error(), boom)
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))
	assert.Len(t, GetErrors(errors.New("one")), 1)
	assert.Len(t, GetErrors(errors.Join(errors.New("a"), errors.New("b"))), 2)

	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")
	assert.Equal(t, []error{a, b, c}, GetErrors(errors.Join(errors.Join(a, b), c)))
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.False(t, IsCancellationError(nil))
	assert.False(t, IsCancellationError(errors.New("boom")))
	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(fmt.Errorf("step: %w", context.DeadlineExceeded)))
	assert.True(t, IsCancellationError(errors.Join(errors.New("boom"), errors.Join(context.Canceled))))

	assert.True(t, IsCancelled(Err[int](error(context.Canceled))))
	assert.False(t, IsCancelled(Err[int](errors.New("boom"))))
	assert.False(t, IsCancelled(Ok[int, error](1)))
}

type tupleErr struct{ msg string }

func (e *tupleErr) Error() string { return e.msg }

func TestIsNil(t *testing.T) {
	t.Parallel()

	var (
		m  map[string]int
		s  []int
		f  func()
		p  *tupleErr
		ch chan int
	)
	for _, v := range []any{nil, m, s, f, p, ch} {
		assert.True(t, IsNil(v), "%T", v)
	}
	for _, v := range []any{0, "", map[string]int{}, []int{}, &tupleErr{}} {
		assert.False(t, IsNil(v), "%T", v)
	}
}

func TestFromTuple_TypedNilError(t *testing.T) {
	t.Parallel()

	var p *tupleErr
	var err error = p
	require.Error(t, err)

	r := FromTuple(5, err)
	assert.True(t, EqualValue(r, 5))

	r = FromTuple(5, error(&tupleErr{msg: "bad"}))
	require.True(t, r.IsErr())
	assert.EqualError(t, r.UnwrapErr(), "bad")
}

func TestMarshalZerologObject(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Object("result", Ok[int, string](5)).Send()
	logger.Info().Object("result", Err[int](errors.New("boom"))).Send()
	logger.Info().Object("result", Err[int]("plain")).Send()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)

	decode := func(line []byte) map[string]any {
		var entry struct {
			Result map[string]any `json:"result"`
		}
		require.NoError(t, json.Unmarshal(line, &entry))
		return entry.Result
	}

	assert.Equal(t, map[string]any{"tag": "expect", "value": float64(5)}, decode(lines[0]))
	assert.Equal(t, map[string]any{"tag": "unexpect", "error": "boom"}, decode(lines[1]))
	assert.Equal(t, map[string]any{"tag": "unexpect", "error": "plain"}, decode(lines[2]))
}
