package expected

// Equal reports whether a and b carry the same tag and equal active payloads.
// An ok result never equals an err result.
//
// Payloads are compared with ==, which panics at run time when an interface
// payload (typically E = error) holds a dynamic type that is not comparable,
// such as a slice-based error. Use EqualFunc for such payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc is Equal for payloads compared by eqT and eqE.
func EqualFunc[T, E any](a, b Result[T, E], eqT func(T, T) bool, eqE func(E, E) bool) bool {
	switch {
	case a.isOk && b.isOk:
		return eqT(a.ok, b.ok)
	case !a.isOk && !b.isOk:
		return eqE(a.err, b.err)
	default:
		return false
	}
}

// EqualValue compares r against a raw ok value; false when r is err.
func EqualValue[T comparable, E any](r Result[T, E], v T) bool {
	return r.isOk && r.ok == v
}

// EqualUnexpect compares r against an error wrapper; false when r is ok.
func EqualUnexpect[T any, E comparable](r Result[T, E], u Unexpect[E]) bool {
	return !r.isOk && r.err == u.payload
}
