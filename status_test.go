package timeexchange

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	if code := ErrorCode(nil); code != 200 {
		t.Fatalf("nil error got code %d", code)
	}
	if code := ErrorCode(errors.New("plain")); code != 500 {
		t.Fatalf("untyped error got code %d", code)
	}
	if code := ErrorCode(ErrNotFound); code != 404 {
		t.Fatalf("ErrNotFound got code %d", code)
	}
	wrapped := fmt.Errorf("route /nope: %w", ErrNotFound)
	if code := ErrorCode(wrapped); code != 404 {
		t.Fatalf("wrapped ErrNotFound got code %d", code)
	}
}

func TestWrapStatus(t *testing.T) {
	if WrapStatus(nil, 500, "x") != nil {
		t.Fatal("Wrapping nil must stay nil")
	}
	inner := errors.New("disk on fire")
	err := WrapStatus(inner, 503, "Could not render %s", "page")
	if !errors.Is(err, inner) {
		t.Fatal("Wrapped error is not reachable")
	}
	if ErrorCode(err) != 503 {
		t.Fatalf("Got code %d", ErrorCode(err))
	}
	if err.Error() != "Could not render page" {
		t.Fatalf("Got message %q", err.Error())
	}
}
