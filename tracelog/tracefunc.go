package tracelog

import "cbufring/x/fmtx"

// TraceFunc adapts a Sink into the func(format string, args ...any)
// shape ring.Config.Trace expects, so a ring's diagnostic lines (the
// non-power-of-two resize warning, the trash-on-hardware-peer no-op)
// become tracelog Events tagged with source instead of going nowhere.
// ring itself never imports tracelog — Config.Trace stays a plain
// function value so the two packages don't form an import cycle
// (Recorder is built on ring.Ring).
func TraceFunc(sink Sink, source string) func(string, ...any) {
	if sink == nil {
		sink = Discard{}
	}
	return func(format string, args ...any) {
		sink.Emit(Event{Level: "warn", Source: source, Message: fmtx.Sprintf(format, args...)})
	}
}
