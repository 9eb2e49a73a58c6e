package box

import (
	"context"
	"errors"
	"testing"
)

func TestErrors_JoinedUnwrapsInOrder(t *testing.T) {
	t.Parallel()
	e1 := errors.New("e1")
	e2 := errors.New("e2")

	got := Errors(errors.Join(e1, e2))
	if len(got) != 2 || got[0] != e1 || got[1] != e2 {
		t.Fatalf("expected [e1 e2], got %v", got)
	}
}

func TestErrors_PlainErrorYieldsSingleton(t *testing.T) {
	t.Parallel()
	e := errors.New("solo")

	got := Errors(e)
	if len(got) != 1 || got[0] != e {
		t.Fatalf("expected singleton [solo], got %v", got)
	}
}

func TestErrors_NilYieldsEmpty(t *testing.T) {
	t.Parallel()
	if got := Errors(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	if !IsNil(nil) {
		t.Fatalf("nil must be nil")
	}
	var p *int
	if !IsNil(p) {
		t.Fatalf("typed nil pointer must be nil")
	}
	if IsNil(5) {
		t.Fatalf("value must not be nil")
	}
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()
	if !IsCancellation(context.Canceled) || !IsCancellation(context.DeadlineExceeded) {
		t.Fatalf("context errors must count as cancellation")
	}
	if IsCancellation(errors.New("other")) {
		t.Fatalf("arbitrary errors must not count as cancellation")
	}
}

func TestComp(t *testing.T) {
	t.Parallel()
	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	if got := Comp(double, inc)(5); got != 11 {
		t.Fatalf("Comp(double, inc)(5) = %d, want 11", got)
	}
	if got := Comp(Iden[int], double)(3); got != 6 {
		t.Fatalf("Comp(Iden, double)(3) = %d, want 6", got)
	}
	if got := Const[string](7)("ignored"); got != 7 {
		t.Fatalf("Const(7) = %d, want 7", got)
	}
}
