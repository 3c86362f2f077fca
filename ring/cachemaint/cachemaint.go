// Package cachemaint provides the ring's cache-maintenance collaborator:
// clean_invalidate(range) and invalidate(range) on byte ranges of the
// backing memory, invoked around every hardware-observable transfer so
// CPU-cached memory stays coherent with a DMA peripheral's view.
package cachemaint

// Maintainer performs cache maintenance on byte ranges of a ring's
// backing buffer. base is the address of the first byte of the range
// (typically `uintptr(unsafe.Pointer(&buf[0])) + offset` on a real
// target); n is the length in bytes.
//
// CleanInvalidate flushes dirty cache lines to memory and drops the
// corresponding cache lines, so a peripheral reading the range afterward
// observes what the CPU just wrote.
//
// Invalidate drops cache lines covering the range without writing them
// back, so a subsequent CPU read of the range misses to memory and
// observes what a peripheral wrote.
type Maintainer interface {
	CleanInvalidate(base uintptr, n int)
	Invalidate(base uintptr, n int)
}

// Noop is a Maintainer for buffers with no hardware peer, or for
// architectures with no cache to maintain (most hosted Go builds). Both
// operations are no-ops.
type Noop struct{}

func (Noop) CleanInvalidate(uintptr, int) {}
func (Noop) Invalidate(uintptr, int)      {}

// Counting is a test/diagnostic Maintainer that simply counts calls and
// records the most recent range, useful for asserting that the ring
// invoked cache maintenance exactly where spec.md §4.3/§4.4 requires it
// to (after the write copy, before the read copy).
type Counting struct {
	CleanInvalidateCalls int
	InvalidateCalls      int
	LastBase             uintptr
	LastLen              int
}

func (c *Counting) CleanInvalidate(base uintptr, n int) {
	c.CleanInvalidateCalls++
	c.LastBase, c.LastLen = base, n
}

func (c *Counting) Invalidate(base uintptr, n int) {
	c.InvalidateCalls++
	c.LastBase, c.LastLen = base, n
}
