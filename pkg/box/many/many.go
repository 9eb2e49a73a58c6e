package many

import "github.com/avigor/railbox/pkg/box"

// Partition splits containers into success and failure payloads in a single
// pass, both slices preserving input order. It consumes any type satisfying
// box.Container, so it works across all three container families.
//
// Go cannot infer V and F from a method-only constraint, so direct calls
// need explicit type arguments; the per-family wrappers (PartitionResults,
// PartitionOptions, PartitionEithers) restore inference.
func Partition[C box.Container[V, F], V, F any](items []C) ([]V, []F) {
	values := make([]V, 0, len(items))
	fails := make([]F, 0)

	for _, it := range items {
		if it.IsFailure() {
			fails = append(fails, it.Err())
		} else {
			values = append(values, it.Value())
		}
	}

	return values, fails
}
