package expected

import (
	"context"
	"errors"
	"reflect"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// IsNil reports whether v is nil or an interface holding a nil pointer, map,
// slice, channel or func.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// GetErrors flattens err into its leaves, following nested errors.Join trees
// depth first.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	return lo.FlatMap(joined.Unwrap(), func(e error, _ int) []error { return GetErrors(e) })
}

// IsCancellationError reports whether err, or any error joined into it, comes
// from a cancelled or expired context.
func IsCancellationError(err error) bool {
	return lo.ContainsBy(GetErrors(err), func(e error) bool {
		return errors.Is(e, context.Canceled) || errors.Is(e, context.DeadlineExceeded)
	})
}

// IsCancelled reports whether r failed on a cancellation error.
func IsCancelled[T any](r Result[T, error]) bool {
	return !r.isOk && IsCancellationError(r.err)
}

// FromTuple converts Go's (value, error) convention. A nil err gives an ok
// result.
//
// Unlike a plain err != nil check, an error interface holding a typed nil
// pointer (e.g. (*MyErr)(nil)) also counts as nil, so it gives an ok result.
func FromTuple[T any](v T, err error) Result[T, error] {
	if !IsNil(err) {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// Try runs f and wraps its (value, error) return.
func Try[T any](f func() (T, error)) Result[T, error] {
	v, err := f()
	return FromTuple(v, err)
}

func ToTuple[T any](r Result[T, error]) (T, error) {
	if r.isOk {
		return r.ok, nil
	}
	var zero T
	return zero, r.err
}

// FromOption is ok with the present value, otherwise err with onAbsent.
func FromOption[T, E any](o mo.Option[T], onAbsent E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](onAbsent)
}

func FromMo[T any](r mo.Result[T]) Result[T, error] {
	v, err := r.Get()
	return FromTuple(v, err)
}

func ToMo[T any](r Result[T, error]) mo.Result[T] {
	if r.isOk {
		return mo.Ok(r.ok)
	}
	return mo.Err[T](r.err)
}
