package box

import "time"

// Container is the minimal capability the aggregation combinators in package
// many require from a two-state value: a failure discriminant plus payload
// extraction for either state. Extraction is a pure read and is always safe;
// aggregators check the discriminant before extracting.
type Container[V, F any] interface {
	// IsFailure reports whether the container holds the failure payload.
	IsFailure() bool
	// Value returns the success payload (zero value on failure).
	Value() V
	// Err returns the failure payload (zero value on success).
	Err() F
}

// Provider is implemented by containers that expose creation metadata.
type Provider[T any] interface {
	Value() T
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
}

// WithError defines the surface of a result-style container.
type WithError[T any] interface {
	Provider[T]
	Err() error
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support.
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

var (
	_ Container[int, error]  = Result[int]{}
	_ Container[int, Unit]   = Option[int]{}
	_ Container[int, string] = Either[string, int]{}

	_ WithCancel[int] = Result[int]{}
)
