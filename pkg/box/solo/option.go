package solo

import (
	"context"

	"github.com/avigor/railbox/pkg/box"
)

func MapOption[In, Out any](ctx context.Context,
	input box.Option[In],
	onSome func(ctx context.Context, r In) Out) box.Option[Out] {

	if input.IsSome() {
		return box.Some(onSome(ctx, input.Value()))
	}
	return box.None[Out]()
}

func SwitchOption[In, Out any](ctx context.Context,
	input box.Option[In],
	onSome func(ctx context.Context, r In) box.Option[Out]) box.Option[Out] {

	if input.IsSome() {
		return onSome(ctx, input.Value())
	}
	return box.None[Out]()
}

// ValidateOption keeps the value only while the predicate holds.
func ValidateOption[T any](ctx context.Context,
	input box.Option[T],
	valid func(ctx context.Context, in T) bool) box.Option[T] {

	if input.IsSome() && valid(ctx, input.Value()) {
		return input
	}
	return box.None[T]()
}

func MatchOption[In, Out any](ctx context.Context, input box.Option[In],
	onSome func(ctx context.Context, r In) Out,
	onNone func(ctx context.Context) Out) Out {

	if input.IsSome() {
		return onSome(ctx, input.Value())
	}
	return onNone(ctx)
}
