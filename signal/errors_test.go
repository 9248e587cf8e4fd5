package signal

import (
	"errors"
	"fmt"
	"testing"
)

func TestAbortError(t *testing.T) {
	if got := ErrAborted.Error(); got != "Aborted" {
		t.Errorf("Error() = %q, want %q", got, "Aborted")
	}
	if got := ErrAborted.Kind(); got != "AbortError" {
		t.Errorf("Kind() = %q, want %q", got, "AbortError")
	}
}

func TestIsAborted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sentinel", ErrAborted, true},
		{"fresh AbortError", &AbortError{}, true},
		{"wrapped", fmt.Errorf("tool call failed: %w", ErrAborted), true},
		{"other error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAborted(tt.err); got != tt.want {
				t.Errorf("IsAborted(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
