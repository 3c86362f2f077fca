// Package irqlock provides the ring's "interrupt-safe spin lock"
// collaborator: acquired with interrupts masked, releasing restores the
// prior interrupt state ("irqsave"/"irqrestore" in the kernel original).
//
// User-mode Go cannot mask CPU interrupts, so SoftLock is a plain mutex;
// the Lock interface is the seam a bare-metal build plugs a real
// disable/enable-interrupts pair into, the same way the teacher splits
// halcore.PinFactory/UARTFactory between a host simulation and a real
// rp2040 implementation behind a build tag.
package irqlock

import "sync"

// State is the saved interrupt state returned by LockIRQSave and handed
// back to UnlockIRQRestore. Its zero value is valid for SoftLock, which
// has no real interrupt state to save.
type State uint32

// Lock is an interrupt-safe spin lock: acquiring it disables interrupts
// (or, on SoftLock, merely excludes other goroutines) and records enough
// state to restore whatever was true before acquisition.
type Lock interface {
	// LockIRQSave acquires the lock and returns the pre-acquisition
	// interrupt state to be passed back to UnlockIRQRestore.
	LockIRQSave() State
	// UnlockIRQRestore releases the lock and restores the interrupt
	// state captured by the matching LockIRQSave.
	UnlockIRQRestore(State)
}

// SoftLock is a software-only Lock backed by a mutex. It never actually
// touches interrupt state; State is always zero.
type SoftLock struct {
	mu sync.Mutex
}

// NewSoftLock returns a ready-to-use SoftLock.
func NewSoftLock() *SoftLock { return &SoftLock{} }

func (l *SoftLock) LockIRQSave() State {
	l.mu.Lock()
	return 0
}

func (l *SoftLock) UnlockIRQRestore(State) {
	l.mu.Unlock()
}
