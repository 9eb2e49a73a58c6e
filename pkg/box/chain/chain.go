package chain

import (
	"context"
	"errors"

	"github.com/avigor/railbox/pkg/box"
	"github.com/avigor/railbox/pkg/box/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res box.Result[T]
}

func Start[T any](ctx context.Context, r box.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, box.Success(v))
}

func (c Chain[T]) Result() box.Result[T] {
	return c.res
}

// Then composes a function that already returns box.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) box.Result[T]) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Value())}
}

// ThenTry composes a function that returns (T, error), like repository calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	u, err := try(c.ctx, c.res.Value())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Chain[T]{ctx: c.ctx, res: box.Cancel[T](err)}
		}
		return Chain[T]{ctx: c.ctx, res: box.Fail[T](err)}
	}
	return Chain[T]{ctx: c.ctx, res: box.Success(u)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: box.Success(onSuccess(c.ctx, c.res.Value()))}
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) box.Result[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// Or yields the first successful chain among c and the alternatives;
// otherwise the first cancel, then the first failure.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(alternatives)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, alternatives...)

	var cancel, fail *Chain[T]

	for i, ch := range candidates {
		if ch.res.IsSuccess() {
			return ch
		}
		if ch.res.IsCancel() {
			if cancel == nil {
				cancel = &candidates[i]
			}
		} else if fail == nil {
			fail = &candidates[i]
		}
	}

	if cancel != nil {
		return *cancel
	}
	if fail != nil {
		return *fail
	}
	return c
}

// And yields the first failing chain among c and the requirements; the last
// one when all succeed.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(required)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, required...)

	last := c
	for _, ch := range candidates {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
	onCancel func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}
