package outcome

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSuccess(t *testing.T) {
	t.Parallel()
	r := Success(5)
	if !r.IsSuccess() || r.IsFailure() {
		t.Fatalf("expected success, got: success=%v, failure=%v", r.IsSuccess(), r.IsFailure())
	}
	if r.Value() != 5 || r.Err() != nil {
		t.Fatalf("expected value 5 with nil error, got: val=%v, err=%v", r.Value(), r.Err())
	}
}

func TestSuccess_StampsMetadata(t *testing.T) {
	t.Parallel()
	r := Success("x")
	if r.Id() == uuid.Nil {
		t.Fatalf("expected a non-nil id")
	}
	if r.CreatedAt().IsZero() {
		t.Fatalf("expected a creation time")
	}
}

func TestSuccess_ZeroValuesStaySuccessful(t *testing.T) {
	t.Parallel()
	if r := Success(false); !r.IsSuccess() {
		t.Fatalf("expected Success(false) on the success branch, got err=%v", r.Err())
	}
	if r := Success(0); !r.IsSuccess() {
		t.Fatalf("expected Success(0) on the success branch, got err=%v", r.Err())
	}
	if r := Success(""); !r.IsSuccess() {
		t.Fatalf("expected Success(\"\") on the success branch, got err=%v", r.Err())
	}
}

func TestDone(t *testing.T) {
	t.Parallel()
	r := Done()
	if !r.IsSuccess() || !r.Value() {
		t.Fatalf("expected Success(true), got: success=%v, val=%v", r.IsSuccess(), r.Value())
	}
}

func TestFail_PreservesError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	r := Fail[int](err)
	if r.IsSuccess() {
		t.Fatalf("expected failure, got success")
	}
	if !errors.Is(r.Err(), err) {
		t.Fatalf("expected the original error, got: %v", r.Err())
	}
	if r.Value() != 0 {
		t.Fatalf("expected zero value on failure, got: %v", r.Value())
	}
}

func TestFail_NilErrorGetsDefault(t *testing.T) {
	t.Parallel()
	r := Fail[string](nil)
	if r.IsSuccess() || !errors.Is(r.Err(), ErrFailed) {
		t.Fatalf("expected ErrFailed, got: success=%v, err=%v", r.IsSuccess(), r.Err())
	}
}

func TestFailf(t *testing.T) {
	t.Parallel()
	r := Failf[int]("bad input %q", "x")
	if r.IsSuccess() || r.Err() == nil {
		t.Fatalf("expected failure, got: success=%v, err=%v", r.IsSuccess(), r.Err())
	}
	if got := r.Err().Error(); got != `bad input "x"` {
		t.Fatalf("expected formatted message, got: %q", got)
	}
}

func TestOf(t *testing.T) {
	t.Parallel()
	ok := Of(42, nil)
	if !ok.IsSuccess() || ok.Value() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v", ok.IsSuccess(), ok.Value())
	}

	parseErr := errors.New("parse")
	bad := Of(0, parseErr)
	if bad.IsSuccess() || !errors.Is(bad.Err(), parseErr) {
		t.Fatalf("expected failure with parse error, got: success=%v, err=%v", bad.IsSuccess(), bad.Err())
	}
}

func TestFailFrom_KeepsErrorAndIdentity(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	src := Fail[int](err)

	dst := FailFrom[int, string](src)
	if dst.IsSuccess() || !errors.Is(dst.Err(), err) {
		t.Fatalf("expected re-typed failure with the same error, got: success=%v, err=%v", dst.IsSuccess(), dst.Err())
	}
	if dst.Id() != src.Id() || !dst.CreatedAt().Equal(src.CreatedAt()) {
		t.Fatalf("expected identity to carry over, got: id=%v want %v", dst.Id(), src.Id())
	}
}
