package many

import (
	"errors"

	"github.com/avigor/railbox/pkg/box"
)

// AllResults combines results under the error-collecting policy. Every
// element is inspected exactly once, in order. When all succeed the outcome
// holds every value in input order; when any fail the outcome fails with
// every error joined in input order, partial successes discarded.
//
// The failure payload is always the joined form, even for a single failing
// element; box.Errors recovers the ordered []error from it.
func AllResults[T any](items []box.Result[T]) box.Result[[]T] {
	values := make([]T, 0, len(items))
	errs := make([]error, 0)

	for _, it := range items {
		if it.IsFailure() {
			errs = append(errs, it.Err())
		} else {
			values = append(values, it.Value())
		}
	}

	if len(errs) > 0 {
		return box.Fail[[]T](errors.Join(errs...))
	}
	return box.Success(values)
}

// SequenceResults combines results under the fail-fast policy: the first
// failure in input order becomes the outcome and no later element is
// inspected. When all succeed the outcome holds every value in input order.
func SequenceResults[T any](items []box.Result[T]) box.Result[[]T] {
	values := make([]T, 0, len(items))

	for _, it := range items {
		if it.IsFailure() {
			return box.Fail[[]T](it.Err())
		}
		values = append(values, it.Value())
	}

	return box.Success(values)
}

// PartitionResults separates results into values and errors, every element
// inspected, both slices in input order.
func PartitionResults[T any](items []box.Result[T]) ([]T, []error) {
	return Partition[box.Result[T], T, error](items)
}

// CollectResults gathers the successful values, silently dropping failures.
func CollectResults[T any](items []box.Result[T]) []T {
	values := make([]T, 0, len(items))
	for _, it := range items {
		if it.IsSuccess() {
			values = append(values, it.Value())
		}
	}
	return values
}

// TraverseResults maps every input through f and sequences the outcomes,
// failing fast on the first error.
func TraverseResults[A, B any](items []A, f func(A) box.Result[B]) box.Result[[]B] {
	values := make([]B, 0, len(items))

	for _, it := range items {
		r := f(it)
		if r.IsFailure() {
			return box.Fail[[]B](r.Err())
		}
		values = append(values, r.Value())
	}

	return box.Success(values)
}
