package ring

// Flags is a bitset of producer/consumer and buffer-nature declarations,
// queried without the lock (a single atomic word read) and mutated only
// under the lock with a release-store on the way out, so any consumer
// that later takes the lock to act on observed flags sees a consistent
// picture (spec.md §4.11).
type Flags uint32

const (
	// NoEvent suppresses event signaling and waiting entirely.
	NoEvent Flags = 1 << iota
	// IsReset is informational: the buffer is in the post-reset zero state.
	IsReset
	// SWIsWriter: the producer is software (CPU). Absent means the
	// producer is hardware.
	SWIsWriter
	// SWIsReader: the consumer is software (CPU). Absent means the
	// consumer is hardware.
	SWIsReader
	// BufIsCacheable: the backing memory is CPU-cached; cache
	// maintenance is required on hardware-boundary crossings.
	BufIsCacheable
	// UseMaxChunkR enables read chunking at ChunkRead-sized boundaries.
	UseMaxChunkR
	// UseMaxChunkW enables write chunking at ChunkWrite-sized boundaries.
	UseMaxChunkW
)

// UseMaxChunkRW is the combination of both chunking flags.
const UseMaxChunkRW = UseMaxChunkR | UseMaxChunkW

// Default is the flag set applied by NewRing/NewRingEtc: both peers
// software, buffer cacheable, no chunking, events enabled.
const Default = SWIsWriter | SWIsReader | BufIsCacheable

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Has reports whether every bit in bit is set.
func (f Flags) Has(bit Flags) bool { return f&bit == bit }

func (f Flags) noEvent() bool        { return f.has(NoEvent) }
func (f Flags) isReset() bool        { return f.has(IsReset) }
func (f Flags) swIsWriter() bool     { return f.has(SWIsWriter) }
func (f Flags) swIsReader() bool     { return f.has(SWIsReader) }
func (f Flags) hwIsWriter() bool     { return !f.swIsWriter() }
func (f Flags) hwIsReader() bool     { return !f.swIsReader() }
func (f Flags) cacheable() bool      { return f.has(BufIsCacheable) }
func (f Flags) chunkReader() bool    { return f.has(UseMaxChunkR) }
func (f Flags) chunkWriter() bool    { return f.has(UseMaxChunkW) }
func (f Flags) hasHardwarePeer() bool {
	return f.hwIsWriter() || f.hwIsReader()
}

// Flags returns the current flag word. Safe to call without external
// synchronization: it is an atomic load.
func (r *Ring) Flags() Flags {
	return Flags(r.flags.Load())
}

// SetFlags sets every bit in bit, under the ring's lock.
func (r *Ring) SetFlags(bit Flags) {
	r.changeFlags(bit, true)
}

// ClearFlags clears every bit in bit, under the ring's lock.
func (r *Ring) ClearFlags(bit Flags) {
	r.changeFlags(bit, false)
}

func (r *Ring) changeFlags(bit Flags, set bool) {
	st := r.lock.LockIRQSave()
	cur := Flags(r.flags.Load())
	if set {
		cur |= bit
	} else {
		cur &^= bit
	}
	r.flags.Store(uint32(cur))
	r.lock.UnlockIRQRestore(st)
}
