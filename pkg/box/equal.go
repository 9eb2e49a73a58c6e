package box

import "errors"

// EqualResults reports whether two Results are in the same state with equal
// payloads. Errors are compared with errors.Is; cancel and plain failure are
// distinct states.
func EqualResults[T comparable](a, b Result[T]) bool {
	if a.isSuccess != b.isSuccess || a.isCancel != b.isCancel {
		return false
	}
	if a.isSuccess {
		return a.value == b.value
	}
	return errors.Is(a.err, b.err)
}

// EqualOptions reports whether two Options are both empty or hold equal
// values.
func EqualOptions[T comparable](a, b Option[T]) bool {
	if a.ok != b.ok {
		return false
	}
	if !a.ok {
		return true
	}
	return a.value == b.value
}

// EqualEithers reports whether two Eithers are on the same side with equal
// payloads.
func EqualEithers[L, R comparable](a, b Either[L, R]) bool {
	if a.isRight != b.isRight {
		return false
	}
	if a.isRight {
		return a.right == b.right
	}
	return a.left == b.left
}
