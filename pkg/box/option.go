package box

import (
	"errors"
	"fmt"
)

// Option represents presence or absence of a value. The zero value is None,
// so Options embed safely into other structs.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{ok: false}
}

// FromOk builds an Option from Go's common (value, ok) pattern, e.g. map
// lookups and channel receives.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr treats a nil pointer as None and dereferences otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

func (o Option[T]) IsFailure() bool {
	return !o.ok
}

// Value returns the contained value; the zero value when None.
func (o Option[T]) Value() T {
	return o.value
}

// Err returns the absence payload. An Option carries no information about
// why the value is missing, so the payload is Unit.
func (o Option[T]) Err() Unit {
	return Unit{}
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) ValueOr(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// ErrAbsent reports an Option that was converted to a Result while empty.
var ErrAbsent = errors.New("box: absent value")

// ToResult upgrades the Option to a Result, failing with ErrAbsent when
// empty.
func (o Option[T]) ToResult() Result[T] {
	if o.ok {
		return Success(o.value)
	}
	return Fail[T](ErrAbsent)
}

// Tap runs f on the value when present and returns the Option unchanged.
func (o Option[T]) Tap(f func(T)) Option[T] {
	if o.ok {
		f(o.value)
	}
	return o
}

// Inspect prints the Option under a label and passes it through. Debug only.
func (o Option[T]) Inspect(label string) Option[T] {
	if o.ok {
		fmt.Printf("%s: Some(%v)\n", label, o.value)
	} else {
		fmt.Printf("%s: None\n", label)
	}
	return o
}
