// Package box provides three immutable two-state containers for expressing
// fallible or optional computations without nil checks or panics:
//
// - Result[T]: a value or an error, with optional cancel state
// - Option[T]: a present or absent value
// - Either[L, R]: one of two arbitrary payloads
//
// All three satisfy the Container capability interface (failure discriminant
// plus payload extraction), which is what the aggregation combinators in
// package many operate on.
//
// Subpackages:
// - solo: single-value synchronous combinators (Map, Switch, Validate, ...)
// - many: array-level aggregation (All, Sequence, Partition)
// - chain: fluent synchronous chaining over Result[T]
// - flow: channel-lifted concurrent pipelines
package box
