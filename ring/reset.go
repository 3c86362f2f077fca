package ring

import "unsafe"

// Reset discards any data currently in the ring by draining tail to
// head, without touching the physical bytes or head itself (spec.md
// §4.8). It is equivalent to a non-blocking, buffer-less read of the
// entire capacity.
func (r *Ring) Reset() {
	r.read(nil, r.len, false)
}

// ResetIndexes performs Reset and then forces head = tail = 0,
// returning both pointers to the buffer base (spec.md §4.8).
func (r *Ring) ResetIndexes() {
	r.Reset()
	st := r.lock.LockIRQSave()
	r.head, r.tail = 0, 0
	r.lock.UnlockIRQRestore(st)
}

// ResetWithZero zeroes the entire backing buffer, discards any data in
// flight, and sets the is_reset hint so a subsequent nil-buffer Write
// can skip a redundant zero-fill (spec.md §4.8).
//
// Per SPEC_FULL.md §4.12, it reproduces original_source/lib/cbuf/cbuf.c's
// branch precisely: when both peers are software it takes the plain
// Reset path (tail catches up to the current head, head untouched);
// only when a hardware peer is declared does it additionally force
// head = tail = 0 and clean-invalidate the whole region, since a
// hardware peer's own pointer cannot be trusted to have drained.
func (r *Ring) ResetWithZero() {
	st := r.lock.LockIRQSave()
	clear(r.buf[:r.len])
	r.lock.UnlockIRQRestore(st)

	if r.Flags().swIsWriter() && r.Flags().swIsReader() {
		r.Reset()
	} else {
		r.ResetIndexes()
		if f := r.Flags(); f.cacheable() && f.hwIsReader() {
			st := r.lock.LockIRQSave()
			base := uintptr(unsafe.Pointer(&r.buf[0]))
			r.cache.CleanInvalidate(base, r.len)
			r.lock.UnlockIRQRestore(st)
		}
	}

	st = r.lock.LockIRQSave()
	r.isReset = true
	r.flags.Store(uint32(Flags(r.flags.Load()) | IsReset))
	r.lock.UnlockIRQRestore(st)
}
