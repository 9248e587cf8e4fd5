// Package signal implements one-way cancellation signals for agent tool
// execution. A signal starts pending and moves to aborted exactly once;
// signals can be observed, combined into a logical OR, and bridged to
// context.Context in both directions.
package signal

import "sync"

// Aborter is the minimal read surface of a cancellation signal: a current
// aborted state plus listener registration. Keeping the contract
// structural lets signal values from other packages or processes be
// combined without sharing a concrete type.
//
// Implementations must be safe for concurrent use. Aborted may be called
// while the signal fires, and multiple listeners may be registered
// independently without interfering with each other.
type Aborter interface {
	// Aborted reports whether the signal has fired.
	Aborted() bool

	// OnAbort registers fn to run when the signal fires. Each listener
	// runs at most once. If the signal has already fired, fn runs
	// synchronously before OnAbort returns. The returned stop function
	// deregisters the listener; calling it after the listener ran is a
	// no-op.
	OnAbort(fn func()) (stop func())
}

// Signal is the concrete one-way cancellation flag. The zero value is not
// usable; create signals with New.
type Signal struct {
	mu        sync.Mutex
	aborted   bool
	listeners map[int]func()
	nextID    int
}

var _ Aborter = (*Signal)(nil)

// New creates a pending signal.
func New() *Signal {
	return &Signal{listeners: make(map[int]func())}
}

// Abort fires the signal. The first call runs every registered listener;
// later calls are no-ops, so racing aborters cannot double-fire.
func (s *Signal) Abort() {
	s.mu.Lock()
	if s.aborted {
		s.mu.Unlock()
		return
	}
	s.aborted = true
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.listeners = nil
	s.mu.Unlock()

	// Listeners run outside the lock so they may call back into the
	// signal without deadlocking.
	for _, fn := range fns {
		fn()
	}
}

// Aborted reports whether Abort has been called.
func (s *Signal) Aborted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aborted
}

// OnAbort registers fn per the Aborter contract.
func (s *Signal) OnAbort(fn func()) (stop func()) {
	s.mu.Lock()
	if s.aborted {
		s.mu.Unlock()
		fn()
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		// The listener map is nil once the signal fired; delete on a
		// nil map is a no-op, which is exactly the contract.
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}
