package signal

import "context"

// FromContext returns a signal that aborts when ctx is done. If ctx can
// never be cancelled the signal stays pending forever.
func FromContext(ctx context.Context) *Signal {
	s := New()
	if ctx.Done() == nil {
		return s
	}
	context.AfterFunc(ctx, s.Abort)
	return s
}

// Bind returns a context derived from parent that is cancelled when sig
// aborts, in addition to the usual parent cancellation. This is how
// context-based tool implementations consume a combined signal.
//
// The returned cancel function releases the observation on sig; call it
// once the operation completes.
func Bind(parent context.Context, sig Aborter) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	if absent(sig) {
		return ctx, cancel
	}
	stop := sig.OnAbort(cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
