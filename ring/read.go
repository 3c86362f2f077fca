package ring

import (
	"context"
	"unsafe"
)

// ReadInto copies up to len(buf) bytes from the ring into buf. It
// returns the number of bytes dequeued, in [0, min(len(buf),
// SpaceUsed())]. If block is true, ReadInto waits for at least one byte
// before returning unless the wait is externally interrupted (spec.md
// §4.4) — this implementation has no external interruption source, so a
// true block always eventually returns at least one byte.
func (r *Ring) ReadInto(buf []byte, block bool) int {
	return r.read(buf, len(buf), block)
}

// Discard advances the tail by up to n bytes without copying data
// anywhere (spec.md §4.4, "If buf_opt is NULL"). It returns the number
// of bytes discarded.
func (r *Ring) Discard(n int, block bool) int {
	return r.read(nil, n, block)
}

// read implements the "wait, then lock, then validate, then loop"
// blocking discipline mandated by spec.md §4.4: waiting happens before
// the lock is taken, and a zero-byte result while blocking (another
// consumer raced ahead, or a spurious wake) causes a re-wait rather than
// a false empty return.
func (r *Ring) read(data []byte, n int, block bool) int {
	assertf(r != nil, "nil ring")
	for {
		if !r.Flags().noEvent() && block {
			_ = r.evt.Wait(context.Background())
		}

		ret := r.attemptRead(data, n)
		if ret != 0 || !block {
			return ret
		}
	}
}

// attemptRead performs one read attempt under the lock (chunked if
// UseMaxChunkR is set and data is non-nil), without re-waiting on the
// event even if it comes up short — that is the caller's job.
func (r *Ring) attemptRead(data []byte, n int) int {
	chunked := data != nil && r.Flags().chunkReader()
	if !chunked {
		st := r.lock.LockIRQSave()
		ret := r.readLocked(data, n)
		r.lock.UnlockIRQRestore(st)
		return ret
	}

	pos := 0
	remaining := n
	chunk := r.chunkRead
	for remaining > 0 {
		take := remaining
		if take > chunk {
			take = chunk
		}
		st := r.lock.LockIRQSave()
		readN := r.readLocked(data[pos:pos+take], take)
		r.lock.UnlockIRQRestore(st)
		if readN == 0 {
			break
		}
		pos += readN
		remaining -= readN
	}
	return pos
}

// readLocked performs one lock-hold's worth of the read: it loops at
// most twice (pre-wrap, post-wrap) draining contiguous runs. Callers
// must hold the lock.
func (r *Ring) readLocked(data []byte, n int) int {
	if r.tail == r.head {
		return 0
	}
	enable := r.Flags().swIsReader()
	pos := 0
	for pos < n && r.tail != r.head {
		segment := r.readSegment(n - pos)

		if f := r.Flags(); f.cacheable() && f.hwIsWriter() {
			base := uintptr(unsafe.Pointer(&r.buf[r.tail]))
			r.cache.Invalidate(base, segment)
		}
		if data != nil && enable {
			copy(data[pos:pos+segment], r.buf[r.tail:r.tail+segment])
		}

		r.tail = r.inc(r.tail, segment)
		pos += segment
	}

	if !r.Flags().noEvent() {
		if r.tail == r.head {
			r.evt.Unsignal()
		} else {
			// A blocking reader consumed the edge in Wait; re-raise it so
			// the bytes still buffered stay visible to the next reader.
			r.evt.Signal(false)
		}
	}
	return pos
}

// ReadByte reads a single byte without chunking overhead, for
// per-character console-style traffic (spec.md §4.5). It returns (byte,
// 1) if a byte was dequeued, or (0, 0) if the ring was empty and block
// was false.
func (r *Ring) ReadByte(block bool) (byte, int) {
	for {
		if !r.Flags().noEvent() && block {
			_ = r.evt.Wait(context.Background())
		}

		st := r.lock.LockIRQSave()
		var c byte
		n := 0
		if r.tail != r.head {
			c = r.buf[r.tail]
			r.tail = r.inc(r.tail, 1)
			n = 1
			if !r.Flags().noEvent() {
				if r.tail == r.head {
					r.evt.Unsignal()
				} else {
					r.evt.Signal(false)
				}
			}
		}
		r.lock.UnlockIRQRestore(st)

		if n != 0 || !block {
			return c, n
		}
	}
}
