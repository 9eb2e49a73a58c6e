package many

import "github.com/avigor/railbox/pkg/box"

// AllEithers combines eithers under the error-collecting policy. When all are
// Right the outcome is Right with every value in input order; when any are
// Left the outcome is Left with every left payload in input order, partial
// rights discarded. The left payload is always a slice, even for a single
// failing element.
func AllEithers[L, R any](items []box.Either[L, R]) box.Either[[]L, []R] {
	values := make([]R, 0, len(items))
	lefts := make([]L, 0)

	for _, it := range items {
		if it.IsLeft() {
			lefts = append(lefts, it.Err())
		} else {
			values = append(values, it.Value())
		}
	}

	if len(lefts) > 0 {
		return box.Left[[]L, []R](lefts)
	}
	return box.Right[[]L](values)
}

// SequenceEithers combines eithers under the fail-fast policy: the first Left
// in input order becomes the outcome alone and no later element is inspected.
func SequenceEithers[L, R any](items []box.Either[L, R]) box.Either[L, []R] {
	values := make([]R, 0, len(items))

	for _, it := range items {
		if it.IsLeft() {
			return box.Left[L, []R](it.Err())
		}
		values = append(values, it.Value())
	}

	return box.Right[L](values)
}

// PartitionEithers separates eithers into rights and lefts, every element
// inspected, both slices in input order.
func PartitionEithers[L, R any](items []box.Either[L, R]) ([]R, []L) {
	return Partition[box.Either[L, R], R, L](items)
}
