package many

import "github.com/avigor/railbox/pkg/box"

// AllOptions combines options: Some of every value in input order when all
// are present, None when any are absent. Every element is inspected.
func AllOptions[T any](items []box.Option[T]) box.Option[[]T] {
	values := make([]T, 0, len(items))
	absent := false

	for _, it := range items {
		if it.IsNone() {
			absent = true
		} else {
			values = append(values, it.Value())
		}
	}

	if absent {
		return box.None[[]T]()
	}
	return box.Some(values)
}

// SequenceOptions combines options under the fail-fast policy: the first
// absent element ends the pass and no later element is inspected.
func SequenceOptions[T any](items []box.Option[T]) box.Option[[]T] {
	values := make([]T, 0, len(items))

	for _, it := range items {
		if it.IsNone() {
			return box.None[[]T]()
		}
		values = append(values, it.Value())
	}

	return box.Some(values)
}

// PartitionOptions separates options into present values and absence
// markers, every element inspected, both slices in input order.
func PartitionOptions[T any](items []box.Option[T]) ([]T, []box.Unit) {
	return Partition[box.Option[T], T, box.Unit](items)
}
