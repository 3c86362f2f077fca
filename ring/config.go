package ring

import (
	"cbufring/ring/cachemaint"
	"cbufring/ring/irqlock"
)

// Default chunk sizes for chunked transfers (spec.md §5, "Chunking and
// lock fairness"): bulk transfers larger than this yield the lock
// between chunks so the interrupt-disabled window never exceeds one
// chunk's worth of copying.
const (
	ChunkRead  = 16 << 10
	ChunkWrite = 16 << 10
)

// Allocator supplies a backing byte buffer of n bytes. The zero value of
// Config uses make([]byte, n).
type Allocator func(n int) []byte

// Config is the full constructor surface for a Ring, exposing every
// collaborator named in spec.md §6 (lock, event-adjacent cache
// maintainer, allocator) plus the flag and chunk-size knobs. NewRing and
// NewRingEtc are thin convenience wrappers around DefaultConfig.
type Config struct {
	// Len is the ring's initial (and maximum) capacity in bytes.
	Len int
	// Buf, if non-nil, is used as the backing buffer instead of
	// allocating one; it must be at least Len bytes. Ownership remains
	// with the caller: the ring never frees it.
	Buf []byte
	// Allocator is consulted when Buf is nil. A nil Allocator defaults
	// to make([]byte, n).
	Allocator Allocator
	// Flags is the initial flag word. Use Default for the ring's normal
	// default (both peers software, buffer cacheable).
	Flags Flags
	// ChunkRead/ChunkWrite override the chunk sizes used when
	// UseMaxChunkR/UseMaxChunkW are set. Zero means ChunkRead/ChunkWrite
	// (16 KiB).
	ChunkRead  int
	ChunkWrite int
	// Lock overrides the interrupt-safe lock. A nil Lock defaults to a
	// software mutex (irqlock.SoftLock).
	Lock irqlock.Lock
	// Cache overrides the cache-maintenance collaborator. A nil Cache
	// defaults to cachemaint.Noop.
	Cache cachemaint.Maintainer
	// Trace, if non-nil, receives the ring's diagnostic lines (the
	// non-power-of-two resize warning, the trash-on-hardware-peer
	// no-op notice). It is never required for correctness.
	Trace func(format string, args ...any)
}

// DefaultConfig returns the Config NewRing/NewRingEtc build on: Default
// flags, standard chunk sizes, software lock, no-op cache maintenance.
func DefaultConfig(length int) Config {
	return Config{
		Len:        length,
		Flags:      Default,
		ChunkRead:  ChunkRead,
		ChunkWrite: ChunkWrite,
	}
}
