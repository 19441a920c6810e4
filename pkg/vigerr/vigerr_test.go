package vigerr

import (
	"errors"
	"testing"
)

func TestNewErrorMessage(t *testing.T) {
	err := New(InvalidArgument, "vig.BuildOptimized", "thread count T must be >= 1")
	want := "vig.BuildOptimized: invalid_argument: thread count T must be >= 1"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCauseAndUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(Overflow, "vig.BuildOptimized", "buffer too small", cause)

	var ve *Error
	if !errors.As(err, &ve) {
		t.Fatal("errors.As should resolve the wrapped error to *Error")
	}
	if ve.Kind != Overflow {
		t.Errorf("Kind = %v, want Overflow", ve.Kind)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{InvalidArgument, "invalid_argument"},
		{Overflow, "overflow"},
		{InvalidInput, "invalid_input"},
		{Kind(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.k, got, tc.want)
		}
	}
}
