package expected

import (
	"errors"
	"fmt"
)

// ErrBadResultAccess is matched by every BadResultAccess.
var ErrBadResultAccess = errors.New("bad Result[T, E] access")

// BadResultAccess reports a programmer error: reading the side of a Result
// that is not active. It is never used as a domain error.
type BadResultAccess struct {
	// Accessor is the method that was misused, e.g. "Unwrap".
	Accessor string
	// Actual is the discriminant the Result really held.
	Actual Tag
}

func (e BadResultAccess) Error() string {
	return fmt.Sprintf("%s: %s called on %s result", ErrBadResultAccess, e.Accessor, e.Actual)
}

func (e BadResultAccess) Is(target error) bool {
	return target == ErrBadResultAccess
}

// IsBadResultAccess reports whether v, typically a recovered panic value, is a
// BadResultAccess.
func IsBadResultAccess(v any) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, ErrBadResultAccess)
}
