package expected

import (
	"errors"

	"github.com/samber/lo"
)

// Aggregate2 is ok with both payloads when both inputs are ok, otherwise it
// fails with the first error from the left.
func Aggregate2[A, B, E any](a Result[A, E], b Result[B, E]) Result[lo.Tuple2[A, B], E] {
	if !a.isOk {
		return Err[lo.Tuple2[A, B]](a.err)
	}
	if !b.isOk {
		return Err[lo.Tuple2[A, B]](b.err)
	}
	return Ok[lo.Tuple2[A, B], E](lo.T2(a.ok, b.ok))
}

func Aggregate3[A, B, C, E any](a Result[A, E], b Result[B, E], c Result[C, E]) Result[lo.Tuple3[A, B, C], E] {
	head := Aggregate2(a, b)
	if !head.isOk {
		return Err[lo.Tuple3[A, B, C]](head.err)
	}
	if !c.isOk {
		return Err[lo.Tuple3[A, B, C]](c.err)
	}
	return Ok[lo.Tuple3[A, B, C], E](lo.T3(a.ok, b.ok, c.ok))
}

func Aggregate4[A, B, C, D, E any](a Result[A, E], b Result[B, E], c Result[C, E],
	d Result[D, E]) Result[lo.Tuple4[A, B, C, D], E] {

	head := Aggregate3(a, b, c)
	if !head.isOk {
		return Err[lo.Tuple4[A, B, C, D]](head.err)
	}
	if !d.isOk {
		return Err[lo.Tuple4[A, B, C, D]](d.err)
	}
	return Ok[lo.Tuple4[A, B, C, D], E](lo.T4(a.ok, b.ok, c.ok, d.ok))
}

// AggregateAll collects every payload in order, or fails with the first
// error encountered scanning left to right. No inputs yield an ok empty slice.
func AggregateAll[T, E any](inputs ...Result[T, E]) Result[[]T, E] {
	if failed, found := lo.Find(inputs, func(r Result[T, E]) bool { return r.IsErr() }); found {
		return Err[[]T](failed.err)
	}
	return Ok[[]T, E](lo.Map(inputs, func(r Result[T, E], _ int) T { return r.ok }))
}

// AggregateInto builds R from all payloads, following the AggregateAll rules.
func AggregateInto[T, E, R any](build func(values []T) R, inputs ...Result[T, E]) Result[R, E] {
	return Map(AggregateAll(inputs...), build)
}

// JoinErrors differs from AggregateAll in that it does not stop at the first
// error: the failure joins every error of inputs with errors.Join.
func JoinErrors[T any](inputs ...Result[T, error]) Result[[]T, error] {
	failed := lo.Filter(inputs, func(r Result[T, error], _ int) bool { return r.IsErr() })
	if len(failed) == 0 {
		return AggregateAll(inputs...)
	}

	var errs []error
	for _, r := range failed {
		errs = append(errs, GetErrors(r.err)...)
	}
	return Err[[]T](errors.Join(errs...))
}
