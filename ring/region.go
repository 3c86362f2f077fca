package ring

// WriteRegion returns zero, one, or two contiguous writable regions
// starting at head, the write-side counterpart to Peek. It is the escape
// hatch a hardware producer uses: original_source/lib/cbuf/cbuf.c has no
// opaque accessor for this (callers that own a DMA engine just read
// cbuf->buf + cbuf->head directly, then call cbuf_skip once the transfer
// completes); WriteRegion gives Go callers the same access without
// exporting the backing slice outright, grounded on
// x/shmring.Ring.WriteAcquire's equivalent span-producing half of the
// Acquire/Commit pair (spec.md §9 supplemented feature, SPEC_FULL.md
// §4.12).
//
// The caller must not retain the returned slices past the next ring
// operation that can move head, and must call Skip(true, n) for the
// number of bytes it actually deposited (which may be less than the
// region's capacity) to make them visible to the reader.
func (r *Ring) WriteRegion() PeekResult {
	st := r.lock.LockIRQSave()
	defer r.lock.UnlockIRQRestore(st)

	avail := r.spaceAvailLocked()
	if avail == 0 {
		return PeekResult{}
	}
	if r.head+avail <= r.len {
		return PeekResult{First: r.buf[r.head : r.head+avail]}
	}
	firstLen := r.len - r.head
	return PeekResult{
		First:  r.buf[r.head:r.len],
		Second: r.buf[0 : avail-firstLen],
	}
}
