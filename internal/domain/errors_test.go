package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "fsinput.load",
		Kind: KindNotFound,
		Path: "days/day-1/resources/input",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindNotFound {
		t.Fatalf("expected kind %s", KindNotFound)
	}

	msg := err.Error()
	for _, want := range []string{"fsinput.load", "not_found", "path=days/day-1/resources/input", "root"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: KindInvalidConfig,
	}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind not to match other kinds")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected plain error not to match")
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("day04.parse", errors.New("line 2: missing ','"))

	if !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected invalid_input kind, got %v", err)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected errors.Is(ErrInvalidInput)")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected cause in message, got %v", err)
	}
}

func TestOpErrorIsMatchesKindSentinel(t *testing.T) {
	err := fmt.Errorf("day 3: %w", &OpError{Op: "fsinput.load", Kind: KindNotFound})

	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected errors.Is(ErrNotFound)")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected no match for another kind's sentinel")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(fmt.Errorf("wrapped: %w", &OpError{Kind: KindUnknownDay})); got != KindUnknownDay {
		t.Fatalf("KindOf = %q", got)
	}
	if got := KindOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty kind, got %q", got)
	}
	if got := KindOf(nil); got != "" {
		t.Fatalf("expected empty kind for nil, got %q", got)
	}
}
