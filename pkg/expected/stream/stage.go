package stream

import (
	"context"

	"github.com/ib-77/expected/pkg/expected"
)

// Stage transforms one result into another. Stages run on worker goroutines
// and must not retain input.
type Stage[In, Out, E any] func(ctx context.Context, input expected.Result[In, E]) expected.Result[Out, E]

func MapStage[In, Out, E any](onOk func(ctx context.Context, v In) Out) Stage[In, Out, E] {
	return func(ctx context.Context, input expected.Result[In, E]) expected.Result[Out, E] {
		return expected.Map(input, func(v In) Out { return onOk(ctx, v) })
	}
}

func AndThenStage[In, Out, E any](onOk func(ctx context.Context, v In) expected.Result[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, input expected.Result[In, E]) expected.Result[Out, E] {
		return expected.AndThen(input, func(v In) expected.Result[Out, E] { return onOk(ctx, v) })
	}
}

// ValidateStage fails values rejected by valid.
func ValidateStage[T, E any](valid func(ctx context.Context, v T) bool,
	onInvalid func(ctx context.Context, v T) E) Stage[T, T, E] {
	return func(ctx context.Context, input expected.Result[T, E]) expected.Result[T, E] {
		return expected.Validate(input,
			func(v T) bool { return valid(ctx, v) },
			func(v T) E { return onInvalid(ctx, v) })
	}
}

func RecoverStage[T, E any](onErr func(ctx context.Context, err E) T) Stage[T, T, E] {
	return func(ctx context.Context, input expected.Result[T, E]) expected.Result[T, E] {
		return input.CatchError(func(err E) T { return onErr(ctx, err) })
	}
}

// EMapStage converts the error type, so it cannot be a Stage.
func EMapStage[T, E, F any](ctx context.Context, input <-chan expected.Result[T, E],
	onErr func(ctx context.Context, err E) F) <-chan expected.Result[T, F] {

	return Finally(ctx, input,
		func(_ context.Context, v T) expected.Result[T, F] { return expected.Ok[T, F](v) },
		func(ctx context.Context, err E) expected.Result[T, F] { return expected.Err[T](onErr(ctx, err)) })
}
