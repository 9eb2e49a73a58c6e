// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - Or/And: pick the first success / require every success
// - RepeatUntil: loop a step while it keeps succeeding
// - Finally: reduce to a concrete value via handlers
//
// A failed or cancelled link short-circuits every later step.
package chain
