package flow

import (
	"context"

	"github.com/avigor/railbox/pkg/box"
)

// Emit turns plain values into a channel of successful results, stopping
// early when the context is cancelled.
func Emit[T any](ctx context.Context, values ...T) <-chan box.Result[T] {
	out := make(chan box.Result[T])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- box.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// EmitResults forwards prebuilt results into a channel, stopping early when
// the context is cancelled.
func EmitResults[T any](ctx context.Context, results ...box.Result[T]) <-chan box.Result[T] {
	out := make(chan box.Result[T])

	go func() {
		defer close(out)

		for _, r := range results {
			select {
			case out <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect reads the channel to completion and returns everything received.
// It relies on the pipeline closing its output, which Run/Fork/Finally do
// once their inputs are exhausted or drained.
func Collect[T any](in <-chan T) []T {
	res := make([]T, 0)
	for v := range in {
		res = append(res, v)
	}
	return res
}

// First returns the first received value, or def when the channel closes or
// the context ends first. The remainder of the channel is drained in the
// background so upstream senders are not left blocked.
func First[T any](ctx context.Context, in <-chan T, def T) T {
	select {
	case v, ok := <-in:
		if !ok {
			return def
		}
		go func() {
			for range in {
			}
		}()
		return v
	case <-ctx.Done():
		return def
	}
}
