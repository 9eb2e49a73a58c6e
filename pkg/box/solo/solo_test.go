package solo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/avigor/railbox/pkg/box"
)

func TestValidate_Valid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Validate(ctx, 5, func(ctx context.Context, in int) (bool, string) {
		return in > 0, "must be positive"
	})

	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Value(), out.Err())
	}
}

func TestValidate_Invalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Validate(ctx, -1, func(ctx context.Context, in int) (bool, string) {
		return in > 0, "must be positive"
	})

	if out.IsSuccess() || out.Err() == nil || out.Err().Error() != "must be positive" {
		t.Fatalf("expected failure 'must be positive', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestAndValidate_PassesFailureThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("upstream")

	called := false
	out := AndValidate(ctx, box.Fail[int](err), func(ctx context.Context, in int) (bool, string) {
		called = true
		return true, ""
	})

	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected upstream failure, got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
	if called {
		t.Fatalf("validator must not run on failed input")
	}
}

func TestValidateAll_CollectsEveryError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reject := func(msg string) func(ctx context.Context, in box.Result[int]) box.Result[int] {
		return func(ctx context.Context, in box.Result[int]) box.Result[int] {
			return box.Fail[int](errors.New(msg))
		}
	}
	accept := func(ctx context.Context, in box.Result[int]) box.Result[int] {
		return in
	}

	out := ValidateAll(ctx, box.Success(1), false, reject("first"), accept, reject("second"))

	if out.IsSuccess() {
		t.Fatalf("expected failure")
	}
	errs := box.Errors(out.Err())
	if len(errs) != 2 || errs[0].Error() != "first" || errs[1].Error() != "second" {
		t.Fatalf("expected [first second], got %v", errs)
	}
}

func TestValidateAll_BreakOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	secondRan := false
	out := ValidateAll(ctx, box.Success(1), true,
		func(ctx context.Context, in box.Result[int]) box.Result[int] {
			return box.Fail[int](errors.New("first"))
		},
		func(ctx context.Context, in box.Result[int]) box.Result[int] {
			secondRan = true
			return in
		})

	if out.IsSuccess() || secondRan {
		t.Fatalf("expected stop at first error, got: success=%v, secondRan=%v", out.IsSuccess(), secondRan)
	}
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Switch(ctx, box.Success(2), func(ctx context.Context, r int) box.Result[string] {
		return box.Success(fmt.Sprintf("n=%d", r))
	})
	if !out.IsSuccess() || out.Value() != "n=2" {
		t.Fatalf("expected success 'n=2', got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}

	err := errors.New("boom")
	bad := Switch(ctx, box.Fail[int](err), func(ctx context.Context, r int) box.Result[string] {
		return box.Success("never")
	})
	if bad.IsSuccess() || bad.Err() != err {
		t.Fatalf("expected failure passthrough, got: success=%v, err=%v", bad.IsSuccess(), bad.Err())
	}

	cancelled := Switch(ctx, box.Cancel[int](err), func(ctx context.Context, r int) box.Result[string] {
		return box.Success("never")
	})
	if !cancelled.IsCancel() {
		t.Fatalf("expected cancel state to survive the switch")
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(ctx, box.Success(3), func(ctx context.Context, r int) int { return r * 2 })
	if !out.IsSuccess() || out.Value() != 6 {
		t.Fatalf("expected success with 6, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var sawErr error
	out := DoubleMap(ctx, box.Fail[int](errors.New("bad")),
		func(ctx context.Context, r int) string { return "ok" },
		func(ctx context.Context, err error) string { sawErr = err; return "err" },
		func(ctx context.Context, err error) string { return "cancel" })

	if out.IsSuccess() || sawErr == nil {
		t.Fatalf("expected error handler to run, got: success=%v, sawErr=%v", out.IsSuccess(), sawErr)
	}
}

func TestTeeAndTeeIf(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	teed := false
	out := Tee(ctx, box.Success(1), func(ctx context.Context, r box.Result[int]) { teed = true })
	if !teed || !out.IsSuccess() {
		t.Fatalf("expected tee on success, got: teed=%v", teed)
	}

	conditioned := false
	TeeIf(ctx, box.Success(10),
		func(ctx context.Context, r box.Result[int]) bool { return r.Value() > 5 },
		func(ctx context.Context, r box.Result[int]) { conditioned = true })
	if !conditioned {
		t.Fatalf("expected conditional tee to fire")
	}
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var branch string
	DoubleTee(ctx, box.Cancel[int](errors.New("stop")),
		func(ctx context.Context, r int) { branch = "success" },
		func(ctx context.Context, err error) { branch = "error" },
		func(ctx context.Context, err error) { branch = "cancel" })

	if branch != "cancel" {
		t.Fatalf("expected cancel branch, got %q", branch)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Try(ctx, box.Success("4"), func(ctx context.Context, r string) (int, error) {
		return len(r), nil
	})
	if !ok.IsSuccess() || ok.Value() != 1 {
		t.Fatalf("expected success with 1, got: success=%v, val=%v", ok.IsSuccess(), ok.Value())
	}

	bad := Try(ctx, box.Success("x"), func(ctx context.Context, r string) (int, error) {
		return 0, errors.New("try-error")
	})
	if bad.IsSuccess() || bad.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got: success=%v, err=%v", bad.IsSuccess(), bad.Err())
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FailOnError(ctx, box.Success(0), func(ctx context.Context, in int) error {
		if in == 0 {
			return errors.New("zero")
		}
		return nil
	})
	if out.IsSuccess() {
		t.Fatalf("expected failure for zero input")
	}

	ok := FailOnError(ctx, box.Success(1), func(ctx context.Context, in int) error { return nil })
	if !ok.IsSuccess() {
		t.Fatalf("expected success passthrough")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, r int) string { return "ok" }
	onError := func(ctx context.Context, err error) string { return "err" }
	onCancel := func(ctx context.Context, err error) string { return "cancel" }

	if got := Finally(ctx, box.Success(1), onSuccess, onError, onCancel); got != "ok" {
		t.Fatalf("expected 'ok', got %q", got)
	}
	if got := Finally(ctx, box.Fail[int](errors.New("e")), onSuccess, onError, onCancel); got != "err" {
		t.Fatalf("expected 'err', got %q", got)
	}
	if got := Finally(ctx, box.Cancel[int](errors.New("e")), onSuccess, onError, onCancel); got != "cancel" {
		t.Fatalf("expected 'cancel', got %q", got)
	}
}

func TestJoin_NoInputsReturnsInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := box.Success(1)
	out := Join(ctx, in, true, func(ctx context.Context, current box.Result[int]) box.Result[int] {
		return current
	})

	if !out.IsSuccess() || out.Value() != 1 {
		t.Fatalf("expected input back, got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}
