package solo

import (
	"context"

	"github.com/avigor/railbox/pkg/box"
)

func MapEither[L, In, Out any](ctx context.Context,
	input box.Either[L, In],
	onRight func(ctx context.Context, r In) Out) box.Either[L, Out] {

	if input.IsRight() {
		return box.Right[L](onRight(ctx, input.Value()))
	}
	return box.Left[L, Out](input.Err())
}

func MapLeft[In, R, Out any](ctx context.Context,
	input box.Either[In, R],
	onLeft func(ctx context.Context, l In) Out) box.Either[Out, R] {

	if input.IsLeft() {
		return box.Left[Out, R](onLeft(ctx, input.Err()))
	}
	return box.Right[Out](input.Value())
}

func SwitchEither[L, In, Out any](ctx context.Context,
	input box.Either[L, In],
	onRight func(ctx context.Context, r In) box.Either[L, Out]) box.Either[L, Out] {

	if input.IsRight() {
		return onRight(ctx, input.Value())
	}
	return box.Left[L, Out](input.Err())
}

func MatchEither[L, R, Out any](ctx context.Context, input box.Either[L, R],
	onRight func(ctx context.Context, r R) Out,
	onLeft func(ctx context.Context, l L) Out) Out {

	if input.IsRight() {
		return onRight(ctx, input.Value())
	}
	return onLeft(ctx, input.Err())
}
