// Package flow lifts the solo combinators over channels for concurrent
// pipelines of Result values.
//
// A pipeline is built from Stage functions (Validate, Map, Switch, Try, Tee)
// run by worker pools:
// - Run: execute a same-type stage with a fixed number of workers
// - Fork: execute a type-changing stage with a fixed number of workers
// - Finally: map Result[In] to Out on completion via handlers
// - Emit/Collect/First: bridge between slices, values and channels
//
// On context cancellation workers stop and, unless disabled through
// WithDrainOnCancel, forward the remaining inputs as cancelled results so
// every emitted value is accounted for downstream.
package flow
