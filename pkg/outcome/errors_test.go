package outcome

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsNil(t *testing.T) {
	t.Parallel()
	if !IsNil(nil) {
		t.Fatalf("expected nil to be nil")
	}

	var typed *PanicError
	var boxed error = typed
	if !IsNil(boxed) {
		t.Fatalf("expected a typed nil pointer boxed in an interface to be nil")
	}

	if IsNil(errors.New("boom")) {
		t.Fatalf("expected a live error to be non-nil")
	}
}

func TestErrors_SplitsJoined(t *testing.T) {
	t.Parallel()
	first := errors.New("first")
	second := errors.New("second")

	parts := Errors(errors.Join(first, second))
	if len(parts) != 2 || !errors.Is(parts[0], first) || !errors.Is(parts[1], second) {
		t.Fatalf("expected [first second], got: %v", parts)
	}
}

func TestErrors_PlainAndNil(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	if parts := Errors(boom); len(parts) != 1 || !errors.Is(parts[0], boom) {
		t.Fatalf("expected single-element slice, got: %v", parts)
	}
	if parts := Errors(nil); len(parts) != 0 {
		t.Fatalf("expected empty slice for nil, got: %v", parts)
	}
}

func TestIsCancellation(t *testing.T) {
	t.Parallel()
	if !IsCancellation(context.Canceled) {
		t.Fatalf("expected context.Canceled to count as cancellation")
	}
	if !IsCancellation(fmt.Errorf("op: %w", context.DeadlineExceeded)) {
		t.Fatalf("expected a wrapped deadline to count as cancellation")
	}
	if IsCancellation(errors.New("boom")) {
		t.Fatalf("expected a plain error not to count as cancellation")
	}
}

func TestPanicError(t *testing.T) {
	t.Parallel()
	pe := &PanicError{Value: "boom"}
	if pe.Error() != "panic: boom" {
		t.Fatalf("expected 'panic: boom', got: %q", pe.Error())
	}
	if pe.Unwrap() != nil {
		t.Fatalf("expected no wrapped error for a non-error panic value")
	}
}

func TestPanicError_UnwrapsErrorValues(t *testing.T) {
	t.Parallel()
	cause := errors.New("cause")
	pe := &PanicError{Value: cause}
	if !errors.Is(pe, cause) {
		t.Fatalf("expected errors.Is to reach the panicked error, got: %v", pe)
	}
}
