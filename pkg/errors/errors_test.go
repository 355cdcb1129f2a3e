package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidGrid, "grid dimensions must be positive, got %dx%d", 0, 16)

	if err.Code != ErrCodeInvalidGrid {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidGrid)
	}
	if !strings.Contains(err.Error(), "0x16") {
		t.Errorf("Error() should contain formatted args, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), string(ErrCodeInvalidGrid)) {
		t.Errorf("Error() should contain the code, got %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeIO, cause, "failed to write blueprint %s", "out.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() should include the cause, got %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{
			name: "matching code",
			err:  New(ErrCodeInvalidConfig, "bad config"),
			code: ErrCodeInvalidConfig,
			want: true,
		},
		{
			name: "non-matching code",
			err:  New(ErrCodeInvalidConfig, "bad config"),
			code: ErrCodeIO,
			want: false,
		},
		{
			name: "plain error",
			err:  stderrors.New("plain"),
			code: ErrCodeInternal,
			want: false,
		},
		{
			name: "wrapped structured error",
			err:  Wrap(ErrCodeStore, New(ErrCodeFallbackNotFound, "missing"), "load failed"),
			code: ErrCodeStore,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if code := GetCode(New(ErrCodeInvalidBlueprint, "overlap")); code != ErrCodeInvalidBlueprint {
		t.Errorf("GetCode = %q, want %q", code, ErrCodeInvalidBlueprint)
	}
	if code := GetCode(stderrors.New("plain")); code != "" {
		t.Errorf("GetCode of plain error = %q, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidComponent, "component headline has no shapes")
	if msg := UserMessage(err); msg != "component headline has no shapes" {
		t.Errorf("UserMessage = %q", msg)
	}

	plain := stderrors.New("plain failure")
	if msg := UserMessage(plain); msg != "plain failure" {
		t.Errorf("UserMessage of plain error = %q", msg)
	}
}
