package box

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of a fallible computation: either a value or an
// error, never both. Every Result is tagged with an id and a creation time
// so pipeline stages can trace individual outcomes.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Cancel marks an outcome that was abandoned before completion, typically
// because the surrounding context expired.
func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// CancelFrom carries the state of one Result into another value type,
// preserving id and creation time.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: from.isSuccess,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FromTuple converts a standard (value, error) pair to a Result.
func FromTuple[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// Catch runs f and converts a panic into a failed Result. It is the bridge
// for code that throws instead of returning errors.
func Catch[T any](f func() T) (r Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			if err, ok := rec.(error); ok {
				r = Fail[T](err)
				return
			}
			r = Fail[T](fmt.Errorf("recovered: %v", rec))
		}
	}()
	return Success(f())
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

// Unwrap exposes the underlying (value, error) pair for idiomatic callers.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// ValueOr returns the value on success, fallback otherwise.
func (r Result[T]) ValueOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// IsZero reports whether the Result was never constructed through Success,
// Fail or Cancel.
func (r Result[T]) IsZero() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

// Tap runs f on the value when successful and returns the Result unchanged.
func (r Result[T]) Tap(f func(T)) Result[T] {
	if r.isSuccess {
		f(r.value)
	}
	return r
}

// TapErr runs f on the error when failed and returns the Result unchanged.
func (r Result[T]) TapErr(f func(error)) Result[T] {
	if !r.isSuccess {
		f(r.err)
	}
	return r
}

// Inspect prints the Result under a label and passes it through. Debug only.
func (r Result[T]) Inspect(label string) Result[T] {
	switch {
	case r.isSuccess:
		fmt.Printf("%s: Success(%v)\n", label, r.value)
	case r.isCancel:
		fmt.Printf("%s: Cancel(%v)\n", label, r.err)
	default:
		fmt.Printf("%s: Fail(%v)\n", label, r.err)
	}
	return r
}
