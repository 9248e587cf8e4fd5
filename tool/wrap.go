package tool

import (
	"context"

	"github.com/mark3labs/abortr/signal"
)

// WithCancellation returns a copy of t whose Execute merges the ambient
// signal with each call's own signal, so firing either one cancels the
// call. Every other field is carried over unchanged and the input tool is
// never mutated.
//
// The input is returned as-is when there is no ambient signal or the tool
// has no Execute. When the merged signal is already aborted at call time
// the wrapped Execute fails with signal.ErrAborted without ever invoking
// the underlying tool. Cancellation after the call has started is up to
// the tool's own handling of the signal it receives; the wrapper does not
// interrupt a running execution.
func WithCancellation(t Tool, ambient signal.Aborter) Tool {
	// Combining with a missing second input normalizes ambient: typed
	// nils come back as nil, a live signal comes back unchanged.
	ambient = signal.Combine(ambient, nil)
	if ambient == nil || t.Execute == nil {
		return t
	}

	run := t.Execute
	wrapped := t
	wrapped.Execute = func(ctx context.Context, callID string, params map[string]any, sig signal.Aborter, onUpdate ProgressFunc) (*Result, error) {
		combined := signal.Combine(sig, ambient)
		if combined != nil && combined.Aborted() {
			return nil, signal.ErrAborted
		}
		return run(ctx, callID, params, combined, onUpdate)
	}
	return wrapped
}
