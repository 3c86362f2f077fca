package ring

import (
	"sync/atomic"

	"cbufring/ring/cachemaint"
	"cbufring/ring/event"
	"cbufring/ring/irqlock"
	"cbufring/x/mathx"
)

// Ring is a concurrent circular byte buffer: (buf, len, lenMax, head,
// tail, event, lock, flags, isReset) per spec.md §3.
//
// The ring reserves one slot to distinguish empty from full: head==tail
// means empty, and usable capacity is len-1. Fields other than buf/lenMax
// (fixed at construction) are read and written only while lock is held,
// except Flags(), which is an atomic load (spec.md §4.11).
type Ring struct {
	buf     []byte
	len     int
	lenMax  int
	lenPow2 uint // 0 unless len is a power of two, in which case = log2(len)

	head int // producer index, next write position
	tail int // consumer index, next read position

	isReset bool // true immediately after a zero-fill reset

	evt   event.Event
	lock  irqlock.Lock
	cache cachemaint.Maintainer
	flags atomic.Uint32

	chunkRead  int
	chunkWrite int

	trace func(format string, args ...any)
}

// NewRing allocates an owned buffer of exactly length bytes and returns a
// ring with Default flags (spec.md §4.10, "initialize").
func NewRing(length int) *Ring {
	return NewRingWithConfig(DefaultConfig(length))
}

// NewRingEtc builds a ring over a caller-supplied buffer (spec.md §4.10,
// "initialize_etc"). Ownership of buf remains with the caller after the
// ring is done with it; the ring never frees it.
func NewRingEtc(length int, buf []byte) *Ring {
	cfg := DefaultConfig(length)
	cfg.Buf = buf
	return NewRingWithConfig(cfg)
}

// NewRingWithConfig builds a ring from a fully specified Config, wiring
// in whichever lock/cache-maintainer/allocator collaborators the caller
// supplies in place of the software defaults.
func NewRingWithConfig(cfg Config) *Ring {
	assertf(cfg.Len > 0, "length must be positive")

	buf := cfg.Buf
	if buf == nil {
		alloc := cfg.Allocator
		if alloc == nil {
			alloc = func(n int) []byte { return make([]byte, n) }
		}
		buf = alloc(cfg.Len)
	}
	assertf(len(buf) >= cfg.Len, "supplied buffer shorter than len")

	lock := cfg.Lock
	if lock == nil {
		lock = irqlock.NewSoftLock()
	}
	cache := cfg.Cache
	if cache == nil {
		cache = cachemaint.Noop{}
	}
	chunkR, chunkW := cfg.ChunkRead, cfg.ChunkWrite
	if chunkR <= 0 {
		chunkR = ChunkRead
	}
	if chunkW <= 0 {
		chunkW = ChunkWrite
	}
	// A chunk at least as large as the ring itself never actually
	// splits a transfer, so clamp both to the ring's own length the
	// way services/hal/internal/util.ClampInt bounds a config value
	// against a runtime-known ceiling.
	chunkR = mathx.Clamp(chunkR, 1, cfg.Len)
	chunkW = mathx.Clamp(chunkW, 1, cfg.Len)
	trace := cfg.Trace
	if trace == nil {
		trace = func(string, ...any) {}
	}

	r := &Ring{
		buf:        buf[:cfg.Len],
		lenMax:     cfg.Len,
		lock:       lock,
		cache:      cache,
		chunkRead:  chunkR,
		chunkWrite: chunkW,
		trace:      trace,
	}
	r.setSize(cfg.Len)
	r.evt.Init(false, false)
	r.flags.Store(uint32(cfg.Flags))
	return r
}

// setSize applies length as the active size, recomputing the
// power-of-two fast-path fields. Callers either hold the lock (Resize)
// or are still constructing the ring (no concurrent access possible).
func (r *Ring) setSize(length int) {
	assertf(length > 0, "length must be positive")
	if isPow2(length) {
		r.lenPow2 = log2(length)
	} else {
		r.lenPow2 = 0
		r.trace("ring: non-power-of-two length %d degrades index arithmetic to modulo", length)
	}
	r.len = length
}

// LenMax returns the ring's maximum capacity, fixed at construction.
func (r *Ring) LenMax() int { return r.lenMax }

// Size returns the ring's current active capacity (spec.md
// "cbuf_size"). 1 <= Size() <= LenMax().
func (r *Ring) Size() int {
	st := r.lock.LockIRQSave()
	n := r.len
	r.lock.UnlockIRQRestore(st)
	return n
}

// SpaceAvail returns the number of bytes free for writing right now.
func (r *Ring) SpaceAvail() int {
	st := r.lock.LockIRQSave()
	n := r.spaceAvailLocked()
	r.lock.UnlockIRQRestore(st)
	return n
}

// SpaceUsed returns the number of bytes available for reading right now.
func (r *Ring) SpaceUsed() int {
	st := r.lock.LockIRQSave()
	n := r.spaceUsedLocked()
	r.lock.UnlockIRQRestore(st)
	return n
}

func (r *Ring) spaceUsedLocked() int {
	if r.lenPow2 != 0 {
		mask := (1 << r.lenPow2) - 1
		return (r.head - r.tail) & mask
	}
	m := (r.head - r.tail) % r.len
	if m < 0 {
		m += r.len
	}
	return m
}

func (r *Ring) spaceAvailLocked() int {
	return r.len - r.spaceUsedLocked() - 1
}
