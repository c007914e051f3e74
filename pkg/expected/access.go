package expected

import (
	"github.com/samber/mo"
)

// Unwrap returns the ok payload. It panics with BadResultAccess when r is err.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic(BadResultAccess{Accessor: "Unwrap", Actual: UnexpectTag})
	}
	return r.ok
}

// UnwrapErr returns the error payload. It panics with BadResultAccess when r
// is ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic(BadResultAccess{Accessor: "UnwrapErr", Actual: ExpectTag})
	}
	return r.err
}

// TryUnwrap is Unwrap without the panic.
func (r Result[T, E]) TryUnwrap() (T, error) {
	if !r.isOk {
		var zero T
		return zero, BadResultAccess{Accessor: "TryUnwrap", Actual: UnexpectTag}
	}
	return r.ok, nil
}

// TryUnwrapErr is UnwrapErr without the panic.
func (r Result[T, E]) TryUnwrapErr() (E, error) {
	if r.isOk {
		var zero E
		return zero, BadResultAccess{Accessor: "TryUnwrapErr", Actual: ExpectTag}
	}
	return r.err, nil
}

// Peek returns the ok payload without checking the discriminant.
// Callers must have established r.IsOk(); otherwise the result is the zero T
// and carries no meaning.
func (r Result[T, E]) Peek() T {
	return r.ok
}

// PeekErr returns the error payload without checking the discriminant.
// Callers must have established r.IsErr().
func (r Result[T, E]) PeekErr() E {
	return r.err
}

func (r Result[T, E]) ValueOr(def T) T {
	if r.isOk {
		return r.ok
	}
	return def
}

func (r Result[T, E]) ValueOrDefault() T {
	if r.isOk {
		return r.ok
	}
	var zero T
	return zero
}

func (r Result[T, E]) ValueOrElse(f func(E) T) T {
	if r.isOk {
		return r.ok
	}
	return f(r.err)
}

func (r Result[T, E]) ToOptional() mo.Option[T] {
	if r.isOk {
		return mo.Some(r.ok)
	}
	return mo.None[T]()
}

func (r Result[T, E]) ToOptionalErr() mo.Option[E] {
	if r.isOk {
		return mo.None[E]()
	}
	return mo.Some(r.err)
}

// Unexpected regenerates the failure wrapper. It panics with BadResultAccess
// when r is ok.
func (r Result[T, E]) Unexpected() Unexpect[E] {
	if r.isOk {
		panic(BadResultAccess{Accessor: "Unexpected", Actual: ExpectTag})
	}
	return Fail(r.err)
}
