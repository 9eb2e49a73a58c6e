package box

import "fmt"

// Either holds exactly one of two values: Left (conventionally the failure
// branch) or Right (the success branch). Unlike Result, the failure payload
// is an arbitrary type, not an error.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v, isRight: false}
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsFailure() bool {
	return !e.isRight
}

// Value returns the right payload; the zero value when Left.
func (e Either[L, R]) Value() R {
	return e.right
}

// Err returns the left payload; the zero value when Right.
func (e Either[L, R]) Err() L {
	return e.left
}

func (e Either[L, R]) ValueOr(fallback R) R {
	if e.isRight {
		return e.right
	}
	return fallback
}

// Swap exchanges the branches, turning Left into Right and back.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Tap runs f on the right value and returns the Either unchanged.
func (e Either[L, R]) Tap(f func(R)) Either[L, R] {
	if e.isRight {
		f(e.right)
	}
	return e
}

// Inspect prints the Either under a label and passes it through. Debug only.
func (e Either[L, R]) Inspect(label string) Either[L, R] {
	if e.isRight {
		fmt.Printf("%s: Right(%v)\n", label, e.right)
	} else {
		fmt.Printf("%s: Left(%v)\n", label, e.left)
	}
	return e
}
