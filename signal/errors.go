package signal

import "errors"

// AbortError reports that an operation was refused or stopped because a
// cancellation signal had fired. The kind marker and message are fixed so
// callers can recognize cancellation regardless of whether it was raised
// before the call started or by the operation's own signal handling.
type AbortError struct{}

// Error returns the fixed abort message.
func (*AbortError) Error() string { return "Aborted" }

// Kind returns the stable marker distinguishing cancellation from other
// failures.
func (*AbortError) Kind() string { return "AbortError" }

// ErrAborted is the error returned when execution is refused because the
// combined cancellation signal was already aborted at call time.
var ErrAborted = &AbortError{}

// IsAborted reports whether err is, or wraps, an AbortError.
func IsAborted(err error) bool {
	var abortErr *AbortError
	return errors.As(err, &abortErr)
}
