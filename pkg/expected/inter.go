package expected

// Discriminated is implemented by every Result regardless of its payload types.
type Discriminated interface {
	IsOk() bool
	IsErr() bool
	Tag() Tag
}

// OkProvider defines access to the ok side of a result.
type OkProvider[T any] interface {
	Discriminated
	// Unwrap returns the ok payload or panics
	Unwrap() T
	// ValueOr returns the ok payload or def
	ValueOr(def T) T
}

// ErrProvider defines access to the error side of a result.
type ErrProvider[E any] interface {
	Discriminated
	// UnwrapErr returns the error payload or panics
	UnwrapErr() E
}

// Either combines both sides.
type Either[T, E any] interface {
	OkProvider[T]
	ErrProvider[E]
}

var (
	_ Either[int, string] = Result[int, string]{}
	_ Discriminated       = Result[struct{}, error]{}
)

// AllOk reports whether every result is ok; it is true for no results.
func AllOk(rs ...Discriminated) bool {
	for _, r := range rs {
		if r.IsErr() {
			return false
		}
	}
	return true
}
