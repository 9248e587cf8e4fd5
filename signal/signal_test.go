package signal

import (
	"sync"
	"testing"
)

func TestSignalStartsPending(t *testing.T) {
	s := New()
	if s.Aborted() {
		t.Error("new signal should not be aborted")
	}
}

func TestSignalAbort(t *testing.T) {
	s := New()
	s.Abort()
	if !s.Aborted() {
		t.Error("signal should be aborted after Abort")
	}

	// Abort is idempotent
	s.Abort()
	if !s.Aborted() {
		t.Error("signal should stay aborted")
	}
}

func TestSignalListeners(t *testing.T) {
	t.Run("listener fires on abort", func(t *testing.T) {
		s := New()
		fired := 0
		s.OnAbort(func() { fired++ })

		s.Abort()
		if fired != 1 {
			t.Errorf("expected listener to fire once, fired %d times", fired)
		}

		// A second Abort must not re-fire the listener
		s.Abort()
		if fired != 1 {
			t.Errorf("expected listener to stay at one firing, got %d", fired)
		}
	})

	t.Run("multiple listeners fire independently", func(t *testing.T) {
		s := New()
		var first, second bool
		s.OnAbort(func() { first = true })
		s.OnAbort(func() { second = true })

		s.Abort()
		if !first || !second {
			t.Errorf("expected both listeners to fire, got first=%v second=%v", first, second)
		}
	})

	t.Run("stop deregisters listener", func(t *testing.T) {
		s := New()
		fired := false
		stop := s.OnAbort(func() { fired = true })
		stop()

		s.Abort()
		if fired {
			t.Error("deregistered listener should not fire")
		}
	})

	t.Run("stop after firing is a no-op", func(t *testing.T) {
		s := New()
		stop := s.OnAbort(func() {})
		s.Abort()
		stop() // must not panic
	})

	t.Run("listener added after abort runs immediately", func(t *testing.T) {
		s := New()
		s.Abort()

		fired := false
		stop := s.OnAbort(func() { fired = true })
		if !fired {
			t.Error("listener registered on an aborted signal should run synchronously")
		}
		stop() // must not panic
	})

	t.Run("listener may call back into the signal", func(t *testing.T) {
		s := New()
		var aborted bool
		s.OnAbort(func() { aborted = s.Aborted() })

		s.Abort()
		if !aborted {
			t.Error("listener should observe the aborted state")
		}
	})
}

func TestSignalConcurrentAbort(t *testing.T) {
	s := New()
	fired := 0
	s.OnAbort(func() { fired++ })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Abort()
		}()
	}
	wg.Wait()

	if fired != 1 {
		t.Errorf("expected exactly one firing under concurrent Abort, got %d", fired)
	}
}
