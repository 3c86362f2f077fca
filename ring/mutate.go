package ring

import "cbufring/x/mathx"

// Skip unconditionally advances head (isWrite true) or tail (isWrite
// false) by n, without touching the event. It is used to reconcile
// indices after an external party — typically DMA — has advanced the
// physical frontier on its own (spec.md §4.7). n must be less than
// Size().
func (r *Ring) Skip(isWrite bool, n int) {
	assertf(n < r.Size(), "skip length must be less than ring length")
	st := r.lock.LockIRQSave()
	if isWrite {
		r.head = r.inc(r.head, n)
	} else {
		r.tail = r.inc(r.tail, n)
	}
	r.lock.UnlockIRQRestore(st)
}

// Trash advances both head and tail by n, preserving SpaceUsed: it
// discards the oldest n bytes while keeping the same amount of data for
// the next reader (a sliding-window drop-oldest). It is forbidden when
// the ring has any hardware peer — the caller cannot move a peer's
// pointer out from under it — and in that case returns silently with no
// effect (spec.md §4.7, §7).
//
// original_source/lib/cbuf/cbuf.c inverts this guard (it returns early
// when both peers are software, so it proceeds only when a hardware peer
// is declared, the opposite of its own doc comment); this implementation
// returns early when any hardware peer is declared instead.
func (r *Ring) Trash(n int) {
	if r.Flags().hasHardwarePeer() {
		r.trace("ring: trash(%d) ignored: ring has a hardware peer", n)
		return
	}
	assertf(n < r.Size(), "trash length must be less than ring length")
	st := r.lock.LockIRQSave()
	r.head = r.inc(r.head, n)
	r.tail = r.inc(r.tail, n)
	r.lock.UnlockIRQRestore(st)
}

// Rewind sets head := tail, discarding everything written but not yet
// read, and returns the number of bytes removed.
func (r *Ring) Rewind() int {
	st := r.lock.LockIRQSave()
	defer r.lock.UnlockIRQRestore(st)

	n := r.spaceUsedLocked()
	r.head = r.tail
	return n
}

// RewindLen moves head backward by min(n, SpaceUsed()) and returns the
// number of bytes actually removed.
func (r *Ring) RewindLen(n int) int {
	st := r.lock.LockIRQSave()
	defer r.lock.UnlockIRQRestore(st)

	n = mathx.Min(n, r.spaceUsedLocked())
	r.head = r.dec(r.head, n)
	return n
}
