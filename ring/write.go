package ring

import (
	"runtime"
	"unsafe"
)

// Write copies up to len(data) bytes from data into the ring, never
// blocking. It returns the number of bytes actually enqueued, in
// [0, min(len(data), SpaceAvail())] (spec.md §4.3).
//
// canReschedule, if true, yields the processor once after the write
// completes (the Go stand-in for the kernel's cooperative
// thread_preempt() hint) via runtime.Gosched().
//
// Write panics if len(data) >= Size(): the caller must not attempt to
// enqueue a block as large as or larger than ring capacity in one call.
func (r *Ring) Write(data []byte, canReschedule bool) int {
	return r.write(data, len(data), canReschedule)
}

// WriteZeros advances the ring as if n zero bytes were written, without
// requiring a caller-owned zero buffer. The physical memset is skipped
// when the ring is still in the post-reset zero state or when the
// producer is declared hardware (spec.md §4.3, "Semantics of buf_opt").
func (r *Ring) WriteZeros(n int, canReschedule bool) int {
	return r.write(nil, n, canReschedule)
}

func (r *Ring) write(data []byte, n int, canReschedule bool) int {
	assertf(r != nil, "nil ring")
	assertf(n < r.Size(), "write request length must be less than ring length")

	pos := 0
	chunked := data != nil && r.Flags().chunkWriter()
	if !chunked {
		st := r.lock.LockIRQSave()
		pos = r.writeLocked(data, n)
		r.lock.UnlockIRQRestore(st)
	} else {
		remaining := n
		chunk := r.chunkWrite
		for remaining > 0 {
			take := remaining
			if take > chunk {
				take = chunk
			}
			st := r.lock.LockIRQSave()
			written := r.writeLocked(data[pos:pos+take], take)
			r.lock.UnlockIRQRestore(st)
			if written == 0 {
				break
			}
			pos += written
			remaining -= written
		}
	}

	if canReschedule {
		runtime.Gosched()
	}
	return pos
}

// writeLocked performs one lock-hold's worth of the write: it loops at
// most twice (pre-wrap, post-wrap) copying contiguous runs, and is the
// only place that touches head, is_reset, or the cache maintainer for a
// Write or WriteZeros (WriteByte does its own single-byte update).
// Callers must hold the lock.
func (r *Ring) writeLocked(data []byte, n int) int {
	enable := r.Flags().swIsWriter()
	pos := 0
	for pos < n && r.spaceAvailLocked() > 0 {
		segment := r.writeSegment(n - pos)
		if segment == 0 {
			break
		}

		if data == nil {
			if !r.isReset && enable {
				clear(r.buf[r.head : r.head+segment])
			}
		} else {
			if enable {
				copy(r.buf[r.head:r.head+segment], data[pos:pos+segment])
			}
			r.isReset = false
		}

		if f := r.Flags(); f.cacheable() && f.hwIsReader() {
			base := uintptr(unsafe.Pointer(&r.buf[r.head]))
			r.cache.CleanInvalidate(base, segment)
		}

		r.head = r.inc(r.head, segment)
		pos += segment
	}

	// Matches the original's cbuf_write_wo_lock, which signals with a
	// hard-coded non-rescheduling edge regardless of the caller's
	// canreschedule; only write_char threads canReschedule through to
	// the event.
	if !r.Flags().noEvent() && r.head != r.tail {
		r.evt.Signal(false)
	}
	return pos
}

// WriteByte writes a single byte without chunking overhead, for
// per-character console-style traffic (spec.md §4.5). It returns 1 if
// the byte was enqueued, 0 if the ring was full.
func (r *Ring) WriteByte(c byte, canReschedule bool) int {
	st := r.lock.LockIRQSave()
	defer r.lock.UnlockIRQRestore(st)

	if r.spaceAvailLocked() == 0 {
		return 0
	}
	r.buf[r.head] = c
	if f := r.Flags(); f.cacheable() && f.hwIsReader() {
		base := uintptr(unsafe.Pointer(&r.buf[r.head]))
		r.cache.CleanInvalidate(base, 1)
	}
	r.head = r.inc(r.head, 1)

	if !r.Flags().noEvent() && r.head != r.tail {
		r.evt.Signal(canReschedule)
	}
	return 1
}
