package chain

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ib-77/expected/pkg/expected"
)

// Chain wraps an expected.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	id     uuid.UUID
	result expected.Result[T, E]
}

// Start creates a new chain from an expected.Result
func Start[T, E any](ctx context.Context, result expected.Result[T, E]) *Chain[T, E] {
	c := &Chain[T, E]{
		ctx:    ctx,
		id:     uuid.New(),
		result: result,
	}
	c.trace("start")
	return c
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return Start(ctx, expected.Ok[T, E](value))
}

// FromError creates a new chain already on the error track
func FromError[T, E any](ctx context.Context, err E) *Chain[T, E] {
	return Start(ctx, expected.Err[T](err))
}

// Result returns the underlying expected.Result
func (c *Chain[T, E]) Result() expected.Result[T, E] {
	return c.result
}

func (c *Chain[T, E]) ID() uuid.UUID {
	return c.id
}

func (c *Chain[T, E]) Context() context.Context {
	return c.ctx
}

// next keeps ctx and id, so one chain keeps one id through type changes.
func next[T, E, U, F any](c *Chain[T, E], step string, result expected.Result[U, F]) *Chain[U, F] {
	n := &Chain[U, F]{
		ctx:    c.ctx,
		id:     c.id,
		result: result,
	}
	n.trace(step)
	return n
}

func (c *Chain[T, E]) trace(step string) {
	zerolog.Ctx(c.ctx).Debug().
		Str("chain_id", c.id.String()).
		Str("step", step).
		Object("result", c.result).
		Msg("chain step")
}

// Then chains a same-type step that returns expected.Result[T, E]
func (c *Chain[T, E]) Then(onOk func(ctx context.Context, v T) expected.Result[T, E]) *Chain[T, E] {
	return Then(c, onOk)
}

// Map chains a same-type pure transformation
func (c *Chain[T, E]) Map(onOk func(ctx context.Context, v T) T) *Chain[T, E] {
	return Map(c, onOk)
}

// Recover moves an error back onto the success track
func (c *Chain[T, E]) Recover(onErr func(ctx context.Context, err E) T) *Chain[T, E] {
	return next(c, "recover", c.result.CatchError(func(err E) T {
		return onErr(c.ctx, err)
	}))
}

// Ensure triggers side effects without changing the result; nil handlers
// are skipped.
func (c *Chain[T, E]) Ensure(onOk func(context.Context, T), onErr func(context.Context, E)) *Chain[T, E] {
	if c.result.IsOk() {
		if onOk != nil {
			onOk(c.ctx, c.result.Peek())
		}
	} else if onErr != nil {
		onErr(c.ctx, c.result.PeekErr())
	}
	return c
}

// Or returns the first chain holding a success; when none does, the first
// failure is kept.
func (c *Chain[T, E]) Or(alternatives ...*Chain[T, E]) *Chain[T, E] {
	if c.result.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.result.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first failing chain, or the last chain when all succeed.
func (c *Chain[T, E]) And(required ...*Chain[T, E]) *Chain[T, E] {
	last := c
	for _, ch := range append([]*Chain[T, E]{c}, required...) {
		if ch.result.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// RepeatUntil runs onOk at least once and keeps running it while the chain
// succeeds and until returns false.
func (c *Chain[T, E]) RepeatUntil(onOk func(ctx context.Context, v T) expected.Result[T, E],
	until func(ctx context.Context, v T) bool) *Chain[T, E] {

	if c.result.IsErr() {
		return c
	}

	for {
		c = c.Then(onOk)

		if c.result.IsErr() || until(c.ctx, c.result.Peek()) {
			return c
		}
	}
}

// While runs onOk as long as the chain succeeds and while holds.
func (c *Chain[T, E]) While(onOk func(ctx context.Context, v T) expected.Result[T, E],
	while func(ctx context.Context, v T) bool) *Chain[T, E] {

	for c.result.IsOk() && while(c.ctx, c.result.Peek()) {
		c = c.Then(onOk)
	}
	return c
}

// Then chains a function that returns expected.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) expected.Result[U, E]) *Chain[U, E] {
	return next(c, "then", expected.AndThen(c.result, func(v T) expected.Result[U, E] {
		return onOk(c.ctx, v)
	}))
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) U) *Chain[U, E] {
	return next(c, "map", expected.Map(c.result, func(v T) U {
		return onOk(c.ctx, v)
	}))
}

// MapErr converts the error track
func MapErr[T, E, F any](c *Chain[T, E], onErr func(context.Context, E) F) *Chain[T, F] {
	return next(c, "map_err", expected.EMap(c.result, func(err E) F {
		return onErr(c.ctx, err)
	}))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnOk func(context.Context, T) (U, error)) *Chain[U, error] {
	return next(c, "then_try", expected.AndThen(c.result, func(v T) expected.Result[U, error] {
		u, err := tryOnOk(c.ctx, v)
		return expected.FromTuple(u, err)
	}))
}

// Finally collapses the chain into a final value
func Finally[T, E, R any](c *Chain[T, E], onOk func(context.Context, T) R, onErr func(context.Context, E) R) R {
	return expected.Match(c.result,
		func(v T) R { return onOk(c.ctx, v) },
		func(err E) R { return onErr(c.ctx, err) })
}
