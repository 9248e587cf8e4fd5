package signal

import "reflect"

// Combine returns a signal that is aborted once either a or b aborts.
//
// Rules, checked in order:
//   - both inputs absent: returns nil (no cancellation possible)
//   - exactly one input present: returns that signal unchanged
//   - either input already aborted: returns that signal directly
//   - otherwise: returns a derived signal observing both sources
//
// Firing both sources, in either order, aborts the derived signal exactly
// once. Once the derived signal fires, both source observations are
// deregistered so neither source keeps a reference to it.
//
// Absent covers nil and typed-nil Aborters. A nil *Signal (or a nil
// foreign implementation) handed through the interface is treated as a
// missing signal, never as an error.
func Combine(a, b Aborter) Aborter {
	if absent(a) {
		a = nil
	}
	if absent(b) {
		b = nil
	}

	switch {
	case a == nil && b == nil:
		return nil
	case b == nil:
		return a
	case a == nil:
		return b
	case a.Aborted():
		return a
	case b.Aborted():
		return b
	}

	combined := New()
	stopA := a.OnAbort(combined.Abort)
	stopB := b.OnAbort(combined.Abort)
	combined.OnAbort(func() {
		stopA()
		stopB()
	})
	return combined
}

// absent reports whether v is nil or a typed nil wrapped in the Aborter
// interface. Typed nils show up when callers pass a nil concrete signal
// across package boundaries.
func absent(v Aborter) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
