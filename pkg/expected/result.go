package expected

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Result holds either an ok value of type T or an error value of type E.
//
// The zero Result is an err result carrying the zero E; there is no empty
// state. The inactive payload is always the zero value of its type.
type Result[T, E any] struct {
	ok   T
	err  E
	isOk bool
}

// Tag names the discriminant of a Result.
type Tag uint8

const (
	UnexpectTag Tag = iota
	ExpectTag
)

func (t Tag) String() string {
	switch t {
	case ExpectTag:
		return "expect"
	case UnexpectTag:
		return "unexpect"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// Expect marks a value as the ok side.
type Expect[T any] struct {
	payload T
}

// Unexpect marks a value as the error side.
type Unexpect[E any] struct {
	payload E
}

func Wrap[T any](v T) Expect[T] {
	return Expect[T]{payload: v}
}

func Fail[E any](e E) Unexpect[E] {
	return Unexpect[E]{payload: e}
}

func (x Expect[T]) Value() T {
	return x.payload
}

func (u Unexpect[E]) Value() E {
	return u.payload
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		ok:   v,
		isOk: true,
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:  e,
		isOk: false,
	}
}

// FromExpect builds an ok Result from an explicit wrapper:
//
//	r := expected.FromExpect[string](expected.Wrap(1))
func FromExpect[E, T any](x Expect[T]) Result[T, E] {
	return Ok[T, E](x.payload)
}

// FromUnexpect builds an err Result from an explicit wrapper.
func FromUnexpect[T, E any](u Unexpect[E]) Result[T, E] {
	return Err[T](u.payload)
}

// Make builds a Result whose ok and error types coincide, so the side has to
// be stated by tag. It panics on a tag other than ExpectTag or UnexpectTag.
func Make[V any](tag Tag, v V) Result[V, V] {
	switch tag {
	case ExpectTag:
		return Ok[V, V](v)
	case UnexpectTag:
		return Err[V](v)
	default:
		panic(fmt.Sprintf("expected: unknown %s", tag))
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

func (r Result[T, E]) Tag() Tag {
	if r.isOk {
		return ExpectTag
	}
	return UnexpectTag
}

// Swap exchanges discriminant and payload with other.
func (r *Result[T, E]) Swap(other *Result[T, E]) {
	*r, *other = *other, *r
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.ok)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// MarshalZerologObject lets a Result be logged with zerolog's Object/EmbedObject.
func (r Result[T, E]) MarshalZerologObject(e *zerolog.Event) {
	e.Str("tag", r.Tag().String())
	if r.isOk {
		e.Interface("value", r.ok)
		return
	}
	if err, ok := any(r.err).(error); ok {
		e.AnErr("error", err)
		return
	}
	e.Interface("error", r.err)
}
