package ring

// Resize changes the ring's active size to newLen, discarding any
// buffered data and zeroing both indices. newLen must not exceed
// LenMax() — the buffer allocated (or supplied) at construction is the
// hard ceiling; Resize only ever narrows or widens within it (spec.md
// §4.9). A non-power-of-two newLen is permitted but degrades index
// arithmetic to modulo and is reported via the ring's trace callback.
func (r *Ring) Resize(newLen int) {
	assertf(newLen <= r.lenMax, "resize beyond len_max")
	st := r.lock.LockIRQSave()
	r.head, r.tail = 0, 0
	r.setSize(newLen)
	r.lock.UnlockIRQRestore(st)
}
