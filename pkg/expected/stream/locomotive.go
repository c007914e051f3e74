package stream

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/expected/pkg/expected"
)

// Run starts lines workers applying stage to every result of inputCh. Output
// order is not preserved when lines > 1. The returned channel is closed once
// inputCh is drained or ctx is done.
func Run[In, Out, E any](ctx context.Context, inputCh <-chan expected.Result[In, E],
	stage Stage[In, Out, E], lines int) <-chan expected.Result[Out, E] {

	out := make(chan expected.Result[Out, E])
	if lines < 1 {
		lines = 1
	}

	g := &errgroup.Group{}
	for line := range lines {
		g.Go(func() error {
			return locomotive(ctx, line, inputCh, out, stage)
		})
	}

	go func() {
		if err := g.Wait(); expected.IsCancellationError(err) {
			zerolog.Ctx(ctx).Debug().Err(err).Msg("stream run cancelled")
		} else if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("stream run failed")
		}
		close(out)
	}()

	return out
}

// RunWithOptions is Run with the worker count taken from ctx.
func RunWithOptions[In, Out, E any](ctx context.Context, inputCh <-chan expected.Result[In, E],
	stage Stage[In, Out, E], defaultLines int) <-chan expected.Result[Out, E] {
	return Run(ctx, inputCh, stage, GetWorkerMaxCount(ctx, defaultLines))
}

func locomotive[In, Out, E any](ctx context.Context, line int, inputCh <-chan expected.Result[In, E],
	outCh chan<- expected.Result[Out, E], stage Stage[In, Out, E]) error {

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-inputCh:
			if !ok {
				return nil
			}

			pr := stage(ctx, in)

			select {
			case <-ctx.Done():
				zerolog.Ctx(ctx).Debug().
					Int("line", line).
					Object("dropped", pr).
					Msg("stream result dropped on cancel")
				return ctx.Err()
			case outCh <- pr:
			}
		}
	}
}
