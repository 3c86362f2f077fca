package tracelog

import (
	"sync"

	"cbufring/ring"
	"cbufring/x/fmtx"
)

// Recorder is the reference Sink: it formats each Event as one line and
// appends it to a *ring.Ring configured NoEvent, eating the module's own
// dog food rather than reaching for a separate log buffer type. Older
// lines are dropped (Emit discards the oldest buffered bytes to make
// room for each new line) once the ring fills, giving Recorder a
// fixed memory footprint regardless of trace volume.
type Recorder struct {
	mu sync.Mutex
	r  *ring.Ring
}

// NewRecorder returns a Recorder backed by a capacity-byte ring.
func NewRecorder(capacity int) *Recorder {
	cfg := ring.DefaultConfig(capacity)
	cfg.Flags = ring.Default | ring.NoEvent
	return &Recorder{r: ring.NewRingWithConfig(cfg)}
}

// Emit formats e as a single line and writes it into the backing ring,
// making room for it first by trashing the oldest bytes if the line
// would not otherwise fit — a trace buffer drops its own tail rather
// than blocking or growing.
func (rec *Recorder) Emit(e Event) {
	e = stamp(e)
	line := fmtx.Sprintf("%s %s %s ts=%d\n", e.Level, e.Source, e.Message, e.TsMs)
	data := []byte(line)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	if cap := rec.r.Size() - 1; len(data) > cap {
		data = data[:cap]
	}
	if need := len(data) - rec.r.SpaceAvail(); need > 0 {
		rec.r.Discard(need, false)
	}
	rec.r.Write(data, false)
}

// Drain removes and returns up to maxBytes of recorded trace lines,
// oldest first.
func (rec *Recorder) Drain(maxBytes int) string {
	buf := make([]byte, maxBytes)
	n := rec.r.ReadInto(buf, false)
	return string(buf[:n])
}

// Len reports how many bytes of recorded trace are currently buffered.
func (rec *Recorder) Len() int {
	return rec.r.SpaceUsed()
}
