package flow

import (
	"context"
	"errors"
	"sync"

	"github.com/avigor/railbox/pkg/box"
	"github.com/avigor/railbox/pkg/box/solo"
)

// ErrCancelled marks results abandoned by a cancelled pipeline.
var ErrCancelled = errors.New("flow: pipeline cancelled")

// Stage transforms one pipeline item. Stages are plain functions so they can
// be composed and tested without channels.
type Stage[In, Out any] func(ctx context.Context, input box.Result[In]) box.Result[Out]

// Validate builds a stage that fails items rejected by the predicate.
func Validate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return func(ctx context.Context, input box.Result[T]) box.Result[T] {
		return solo.AndValidate(ctx, input, validate)
	}
}

// Map builds a stage from a pure transformation.
func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) Stage[In, Out] {
	return func(ctx context.Context, input box.Result[In]) box.Result[Out] {
		return solo.Map(ctx, input, onSuccess)
	}
}

// Switch builds a stage from a result-returning transformation.
func Switch[In, Out any](onSuccess func(ctx context.Context, r In) box.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, input box.Result[In]) box.Result[Out] {
		return solo.Switch(ctx, input, onSuccess)
	}
}

// Try builds a stage from a fallible (Out, error) function.
func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input box.Result[In]) box.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	}
}

// Tee builds a pass-through stage triggering a side effect on success.
func Tee[T any](onSuccess func(ctx context.Context, r box.Result[T])) Stage[T, T] {
	return func(ctx context.Context, input box.Result[T]) box.Result[T] {
		return solo.Tee(ctx, input, onSuccess)
	}
}

// Run executes a same-type stage over the input channel with the given
// number of workers. Output order follows completion, not input order.
func Run[T any](ctx context.Context, in <-chan box.Result[T], stage Stage[T, T], workers int) <-chan box.Result[T] {
	return Fork(ctx, in, stage, workers)
}

// Fork executes a type-changing stage over the input channel with the given
// number of workers.
func Fork[In, Out any](ctx context.Context, in <-chan box.Result[In], stage Stage[In, Out], workers int) <-chan box.Result[Out] {
	if workers < 1 {
		workers = 1
	}

	out := make(chan box.Result[Out])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go work(ctx, in, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func work[In, Out any](ctx context.Context, in <-chan box.Result[In], out chan<- box.Result[Out],
	stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			drain(ctx, in, out)
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			select {
			case out <- stage(ctx, r):
			case <-ctx.Done():
				forward(r, out)
				drain(ctx, in, out)
				return
			}
		}
	}
}

// drain forwards the remaining inputs as cancelled results so downstream
// stages still see one output per input.
func drain[In, Out any](ctx context.Context, in <-chan box.Result[In], out chan<- box.Result[Out]) {
	if !DrainOnCancel(ctx, true) {
		return
	}
	for r := range in {
		forward(r, out)
	}
}

func forward[In, Out any](r box.Result[In], out chan<- box.Result[Out]) {
	if r.IsCancel() {
		out <- box.CancelFrom[In, Out](r)
	} else {
		out <- box.Cancel[Out](ErrCancelled)
	}
}

// Handlers collapse a Result into a final value, one handler per state.
type Handlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finally maps every incoming Result to a plain value via the handlers.
func Finally[In, Out any](ctx context.Context, in <-chan box.Result[In], h Handlers[In, Out]) <-chan Out {
	out := make(chan Out)

	go func() {
		defer close(out)

		for r := range in {
			out <- solo.Finally(ctx, r, h.OnSuccess, h.OnError, h.OnCancel)
		}
	}()

	return out
}
