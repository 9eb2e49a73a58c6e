// Package solo contains single-value, synchronous combinators over the
// containers in package box. These form the building blocks for error-aware
// pipelines without channels.
//
// Result combinators:
//   - Succeed/Fail/Cancel: construct Result[T]
//   - Validate/AndValidate/ValidateAll: validation producing failure on
//     invalid input, optionally collecting every error
//   - Switch: move from Result[In] to Result[Out]
//   - Map/DoubleMap: transform successful values (with error/cancel maps)
//   - Try: call a function (Out, error) and convert the error to failure
//   - Tee/TeeIf/DoubleTee: side-effect helpers
//   - Finally: reduce to a concrete value via success/error/cancel handlers
//
// Option and Either get the equivalent Map/Switch/Match surface with
// suffixed names (MapOption, SwitchEither, ...).
package solo
