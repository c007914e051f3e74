package stream

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/expected/pkg/expected"
)

// FromResults sends every result to the returned channel, stopping early when
// ctx is done. The channel is closed afterwards.
func FromResults[T, E any](ctx context.Context, results []expected.Result[T, E]) <-chan expected.Result[T, E] {
	in := make(chan expected.Result[T, E])

	go func() {
		defer close(in)

		for i, r := range results {
			select {
			case in <- r:
			case <-ctx.Done():
				zerolog.Ctx(ctx).Debug().
					Int("rest", len(results)-i).
					Msg("stream source stopped")
				return
			}
		}
	}()

	return in
}

// FromValues is FromResults over ok results.
func FromValues[T, E any](ctx context.Context, values []T) <-chan expected.Result[T, E] {
	results := make([]expected.Result[T, E], len(values))
	for i, v := range values {
		results[i] = expected.Ok[T, E](v)
	}
	return FromResults(ctx, results)
}

// Collect drains out until it is closed or ctx is done.
func Collect[V any](ctx context.Context, out <-chan V) []V {
	res, _ := collect(ctx, out)
	return res
}

// collect also reports whether out was closed, i.e. whether res is complete.
// Values already waiting on out when ctx is done are still taken.
func collect[V any](ctx context.Context, out <-chan V) ([]V, bool) {
	res := make([]V, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res, true
			}
			res = append(res, v)
		case <-ctx.Done():
			for {
				select {
				case v, ok := <-out:
					if !ok {
						return res, true
					}
					res = append(res, v)
				default:
					return res, false
				}
			}
		}
	}
}

// Gather aggregates a drained channel: ok with every payload in arrival order,
// or the first error that arrived. When ctx is done before out is closed the
// batch is incomplete: the first error seen so far wins, otherwise the result
// fails with onCancel(ctx, ctx.Err()).
func Gather[T, E any](ctx context.Context, out <-chan expected.Result[T, E],
	onCancel func(ctx context.Context, err error) E) expected.Result[[]T, E] {

	res, complete := collect(ctx, out)
	gathered := expected.AggregateAll(res...)
	if complete || gathered.IsErr() {
		return gathered
	}

	zerolog.Ctx(ctx).Debug().
		Int("received", len(res)).
		Msg("stream gather cancelled")
	return expected.Err[[]T](onCancel(ctx, ctx.Err()))
}

// GatherErr is Gather for error payloads; an incomplete batch fails with the
// context error.
func GatherErr[T any](ctx context.Context, out <-chan expected.Result[T, error]) expected.Result[[]T, error] {
	return Gather(ctx, out, func(_ context.Context, err error) error { return err })
}

// Finally reduces each result to a value.
func Finally[T, E, R any](ctx context.Context, input <-chan expected.Result[T, E],
	onOk func(ctx context.Context, v T) R, onErr func(ctx context.Context, err E) R) <-chan R {

	out := make(chan R)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}

				r := expected.Match(in,
					func(v T) R { return onOk(ctx, v) },
					func(err E) R { return onErr(ctx, err) })

				select {
				case out <- r:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
