package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidAlgorithm, "unknown algorithm: %s", "spiral")

	if !Is(err, ErrCodeInvalidAlgorithm) {
		t.Error("Is(err, ErrCodeInvalidAlgorithm) = false, want true")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("Is matched the wrong code")
	}
	want := "INVALID_ALGORITHM: unknown algorithm: spiral"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInvalidConfig, cause, "load %s", "tuning.toml")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if GetCode(err) != ErrCodeInvalidConfig {
		t.Errorf("GetCode = %q, want %q", GetCode(err), ErrCodeInvalidConfig)
	}
	if UserMessage(err) != "load tuning.toml" {
		t.Errorf("UserMessage = %q, want message without code prefix", UserMessage(err))
	}
}

func TestGetCode_ThroughWrappingChain(t *testing.T) {
	inner := New(ErrCodeFileNotFound, "no such graph")
	outer := fmt.Errorf("loading input: %w", inner)

	if GetCode(outer) != ErrCodeFileNotFound {
		t.Errorf("GetCode = %q, want code from wrapped error", GetCode(outer))
	}
	if !Is(outer, ErrCodeFileNotFound) {
		t.Error("Is did not unwrap to the coded error")
	}
}

func TestGetCode_PlainError(t *testing.T) {
	err := stderrors.New("plain")

	if GetCode(err) != "" {
		t.Errorf("GetCode = %q, want empty for plain error", GetCode(err))
	}
	if UserMessage(err) != "plain" {
		t.Errorf("UserMessage = %q, want raw message", UserMessage(err))
	}
}
