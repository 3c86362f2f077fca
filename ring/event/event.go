// Package event provides an edge-triggered binary event, the Go stand-in
// for the kernel event_t the ring buffer waits and signals on.
//
// Unlike a condition variable, a signal that nobody is waiting for is not
// lost forever, but it also does not stay "sticky" beyond one edge: Signal
// records exactly one pending wakeup (coalesced), and Wait consumes it.
// Unsignal clears a pending wakeup without anybody having consumed it,
// modelling the empty-transition path where the ring unsignals the event
// as soon as it drains.
package event

import "context"

// Event is an auto-reset, edge-triggered signal. The zero value is not
// ready for use; call Init first.
//
// Grounded on x/shmring.Ring's readable/writable channels (buffered size
// 1, best-effort non-blocking send on the producer side), generalized
// into a standalone type with explicit Init/Signal/Unsignal/Wait so it
// can be shared by write and read paths and by write_char/read_char.
type Event struct {
	ch chan struct{}
}

// Init prepares e for use. manualReset is accepted for API parity with the
// original event_t (event_init(event, manual_reset, initial)) but this
// ring only ever uses auto-reset events; manualReset is retained so a
// caller porting kernel code 1:1 has somewhere to pass the flag, and is
// otherwise ignored. initial, if true, signals the event immediately.
func (e *Event) Init(manualReset bool, initial bool) {
	_ = manualReset
	e.ch = make(chan struct{}, 1)
	if initial {
		e.Signal(false)
	}
}

// Signal raises the edge. canreschedule is accepted for API parity with
// cbuf_write_char's canreschedule pass-through; this software event never
// blocks the caller so there is nothing to reschedule and the parameter
// is a no-op here, kept so callers mirror the original call shape.
func (e *Event) Signal(canreschedule bool) {
	_ = canreschedule
	select {
	case e.ch <- struct{}{}:
	default:
	}
}

// Unsignal clears a pending edge, if any, without blocking.
func (e *Event) Unsignal() {
	select {
	case <-e.ch:
	default:
	}
}

// Signaled reports whether an edge is currently pending, without
// consuming it. Intended for tests and diagnostics, not for
// synchronization: the result is stale the instant it is returned.
func (e *Event) Signaled() bool {
	select {
	case v := <-e.ch:
		select {
		case e.ch <- v:
		default:
		}
		return true
	default:
		return false
	}
}

// Wait blocks until an edge is observed or ctx is done. A nil ctx is
// treated as context.Background (wait forever) — the ring's blocking read
// path always supplies one so callers can bound or cancel a wait.
func (e *Event) Wait(ctx context.Context) error {
	if ctx == nil {
		<-e.ch
		return nil
	}
	select {
	case <-e.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
