package solo

import (
	"context"
	"errors"

	"github.com/avigor/railbox/pkg/box"
)

func Succeed[T any](input T) box.Result[T] {
	return box.Success(input)
}

func Fail[T any](err error) box.Result[T] {
	return box.Fail[T](err)
}

func Cancel[T any](err error) box.Result[T] {
	return box.Cancel[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) box.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input box.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) box.Result[T] {

	if input.IsSuccess() {

		if valid, errMsg := validate(ctx, input.Value()); valid {
			return box.Success(input.Value())
		} else {
			return box.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// ValidateAll runs every validator against input, collecting errors with
// errors.Join unless breakOnError stops at the first one.
func ValidateAll[T any](
	ctx context.Context,
	input box.Result[T],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in box.Result[T]) box.Result[T]) box.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current box.Result[T]) box.Result[T] {

			if current.IsFailure() && current.Err() != err {
				e := box.Errors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if box.IsNil(err) {
				return current
			}

			return box.Fail[T](err)
		},
		validators...,
	)
}

func Switch[In, Out any](ctx context.Context,
	input box.Result[In],
	onSuccess func(ctx context.Context, r In) box.Result[Out]) box.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	} else {
		if input.IsCancel() {
			return box.Cancel[Out](input.Err())
		} else {
			return box.Fail[Out](input.Err())
		}
	}
}

func Map[In, Out any](ctx context.Context,
	input box.Result[In],
	onSuccess func(ctx context.Context, r In) Out) box.Result[Out] {

	if input.IsSuccess() {
		return box.Success(onSuccess(ctx, input.Value()))
	} else {
		if input.IsCancel() {
			return box.Cancel[Out](input.Err())
		} else {
			return box.Fail[Out](input.Err())
		}
	}
}

func Tee[T any](ctx context.Context,
	input box.Result[T],
	onSuccess func(ctx context.Context, r box.Result[T])) box.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input box.Result[T],
	condition func(ctx context.Context, r box.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r box.Result[T])) box.Result[T] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input box.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) box.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Value())
	} else {
		if input.IsCancel() {
			onCancel(ctx, input.Err())
		} else {
			onError(ctx, input.Err())
		}
	}

	return input
}

func DoubleMap[In, Out any](ctx context.Context, input box.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) box.Result[Out] {

	if input.IsSuccess() {
		return box.Success(onSuccess(ctx, input.Value()))
	}

	if input.IsCancel() {
		onCancel(ctx, input.Err())
		return box.Cancel[Out](input.Err())
	}

	onError(ctx, input.Err())
	return box.Fail[Out](input.Err())
}

func Try[In, Out any](ctx context.Context, input box.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) box.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return box.Fail[Out](err)
		}

		return box.Success(out)
	}

	if input.IsCancel() {
		return box.Cancel[Out](input.Err())
	} else {
		return box.Fail[Out](input.Err())
	}
}

func FailOnError[T any](ctx context.Context, input box.Result[T],
	maybeErr func(ctx context.Context, in T) error) box.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return box.Fail[T](err)
		}
		return input
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input box.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	} else if input.IsCancel() {
		return onCancel(ctx, input.Err())
	} else {
		return onError(ctx, input.Err())
	}
}

func Join[T any](ctx context.Context,
	input box.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current box.Result[T]) box.Result[T],
	inputsF ...func(ctx context.Context, in box.Result[T]) box.Result[T]) box.Result[T] {

	if len(inputsF) == 0 || concat == nil || !box.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !box.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !box.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
