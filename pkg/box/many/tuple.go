package many

import (
	"errors"

	"github.com/avigor/railbox/pkg/box"
)

// Tuple2 is a pair of independently typed values.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 holds three independently typed values.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Zip2 is the fixed-arity fail-fast entry point for two results of
// different value types. The first failure in argument order wins.
func Zip2[A, B any](ra box.Result[A], rb box.Result[B]) box.Result[Tuple2[A, B]] {
	if ra.IsFailure() {
		return box.Fail[Tuple2[A, B]](ra.Err())
	}
	if rb.IsFailure() {
		return box.Fail[Tuple2[A, B]](rb.Err())
	}
	return box.Success(Tuple2[A, B]{First: ra.Value(), Second: rb.Value()})
}

// Zip3 is the three-argument form of Zip2.
func Zip3[A, B, C any](ra box.Result[A], rb box.Result[B], rc box.Result[C]) box.Result[Tuple3[A, B, C]] {
	if ra.IsFailure() {
		return box.Fail[Tuple3[A, B, C]](ra.Err())
	}
	if rb.IsFailure() {
		return box.Fail[Tuple3[A, B, C]](rb.Err())
	}
	if rc.IsFailure() {
		return box.Fail[Tuple3[A, B, C]](rc.Err())
	}
	return box.Success(Tuple3[A, B, C]{First: ra.Value(), Second: rb.Value(), Third: rc.Value()})
}

// Combine2 is the fixed-arity error-collecting entry point for two results
// of different value types: when either fails, every error is joined in
// argument order.
func Combine2[A, B any](ra box.Result[A], rb box.Result[B]) box.Result[Tuple2[A, B]] {
	errs := make([]error, 0, 2)
	if ra.IsFailure() {
		errs = append(errs, ra.Err())
	}
	if rb.IsFailure() {
		errs = append(errs, rb.Err())
	}
	if len(errs) > 0 {
		return box.Fail[Tuple2[A, B]](errors.Join(errs...))
	}
	return box.Success(Tuple2[A, B]{First: ra.Value(), Second: rb.Value()})
}

// Combine3 is the three-argument form of Combine2.
func Combine3[A, B, C any](ra box.Result[A], rb box.Result[B], rc box.Result[C]) box.Result[Tuple3[A, B, C]] {
	errs := make([]error, 0, 3)
	if ra.IsFailure() {
		errs = append(errs, ra.Err())
	}
	if rb.IsFailure() {
		errs = append(errs, rb.Err())
	}
	if rc.IsFailure() {
		errs = append(errs, rc.Err())
	}
	if len(errs) > 0 {
		return box.Fail[Tuple3[A, B, C]](errors.Join(errs...))
	}
	return box.Success(Tuple3[A, B, C]{First: ra.Value(), Second: rb.Value(), Third: rc.Value()})
}
