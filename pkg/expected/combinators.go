package expected

// Map applies onOk to the ok payload. An err result is passed through
// retagged as Result[U, E]; onOk is not called.
func Map[T, U, E any](input Result[T, E], onOk func(v T) U) Result[U, E] {
	if input.isOk {
		return Ok[U, E](onOk(input.ok))
	}
	return Err[U](input.err)
}

// EMap applies onErr to the error payload and passes an ok result through.
func EMap[T, E, F any](input Result[T, E], onErr func(e E) F) Result[T, F] {
	if input.isOk {
		return Ok[T, F](input.ok)
	}
	return Err[T](onErr(input.err))
}

// AndThen calls onOk with the ok payload and returns its result as is. onOk
// must keep the error type E of input.
func AndThen[T, U, E any](input Result[T, E], onOk func(v T) Result[U, E]) Result[U, E] {
	if input.isOk {
		return onOk(input.ok)
	}
	return Err[U](input.err)
}

// OrElse calls onErr with the error payload and returns its result as is.
// onErr must keep the ok type T of input.
func OrElse[T, E, F any](input Result[T, E], onErr func(e E) Result[T, F]) Result[T, F] {
	if input.isOk {
		return Ok[T, F](input.ok)
	}
	return onErr(input.err)
}

// CatchError turns an err result into an ok one holding onErr(e).
func (r Result[T, E]) CatchError(onErr func(e E) T) Result[T, E] {
	if r.isOk {
		return r
	}
	return Ok[T, E](onErr(r.err))
}

func CatchError[T, E any](input Result[T, E], onErr func(e E) T) Result[T, E] {
	return input.CatchError(onErr)
}

// Match reduces input to a single value.
func Match[T, E, R any](input Result[T, E], onOk func(v T) R, onErr func(e E) R) R {
	if input.isOk {
		return onOk(input.ok)
	}
	return onErr(input.err)
}

// Then hands the whole result to f.
func Then[T, E, R any](input Result[T, E], f func(r Result[T, E]) R) R {
	return f(input)
}

// Flatten removes one level of nesting.
func Flatten[T, E any](input Result[Result[T, E], E]) Result[T, E] {
	if input.isOk {
		return input.ok
	}
	return Err[T](input.err)
}

// Validate fails an ok result whose payload does not satisfy valid.
func Validate[T, E any](input Result[T, E], valid func(v T) bool, onInvalid func(v T) E) Result[T, E] {
	if input.isOk && !valid(input.ok) {
		return Err[T](onInvalid(input.ok))
	}
	return input
}

func (r Result[T, E]) Tee(onOk func(v T)) Result[T, E] {
	if r.isOk {
		onOk(r.ok)
	}
	return r
}

func (r Result[T, E]) DoubleTee(onOk func(v T), onErr func(e E)) Result[T, E] {
	if r.isOk {
		onOk(r.ok)
	} else {
		onErr(r.err)
	}
	return r
}
