package ring

// PeekResult is the zero-, one-, or two-region snapshot returned by
// Peek. Per spec.md §9's re-architecture hint, this is an ordered pair
// of optional byte slices rather than a fixed two-element array of
// (pointer, length) records with NULL sentinels — grounded directly on
// x/shmring.Ring.ReadAcquire's (p1, p2 []byte) return shape.
type PeekResult struct {
	First  []byte
	Second []byte
}

// Len returns the total number of bytes spanned by First and Second.
func (p PeekResult) Len() int { return len(p.First) + len(p.Second) }

// Peek atomically snapshots the currently readable run as zero, one, or
// two contiguous regions, without advancing tail (spec.md §4.6). The
// returned slices alias the ring's backing buffer and remain valid only
// until the next ring operation that can move tail or head (any write,
// read, skip, trash, rewind, or reset) — the caller must finish using
// them, or copy them out, before calling another ring method.
func (r *Ring) Peek() PeekResult {
	st := r.lock.LockIRQSave()
	defer r.lock.UnlockIRQRestore(st)

	used := r.spaceUsedLocked()
	if used == 0 {
		return PeekResult{}
	}
	if r.head > r.tail {
		return PeekResult{First: r.buf[r.tail:r.head]}
	}
	firstLen := r.len - r.tail
	return PeekResult{
		First:  r.buf[r.tail:r.len],
		Second: r.buf[0 : used-firstLen],
	}
}
