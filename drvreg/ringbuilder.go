package drvreg

import (
	"encoding/json"
	"fmt"

	"cbufring/errcode"
	"cbufring/ring"
	"cbufring/tracelog"
)

// RingParams is the JSON shape a "ring" device type expects in
// BuildInput.ParamsJSON: a length and an optional, readable flag list
// (the sw/hw peer declarations from spec.md §4.11 — Default applies when
// Flags is empty).
type RingParams struct {
	Len        int      `json:"len"`
	Flags      []string `json:"flags,omitempty"`
	ChunkRead  int      `json:"chunk_read,omitempty"`
	ChunkWrite int      `json:"chunk_write,omitempty"`
}

var flagNames = map[string]ring.Flags{
	"no_event":         ring.NoEvent,
	"sw_is_writer":     ring.SWIsWriter,
	"sw_is_reader":     ring.SWIsReader,
	"buf_is_cacheable": ring.BufIsCacheable,
	"use_max_chunk_r":  ring.UseMaxChunkR,
	"use_max_chunk_w":  ring.UseMaxChunkW,
}

// RingBuilder is the default Builder: it decodes RingParams and
// constructs a software-backed *ring.Ring with ring.NewRingWithConfig.
// Sink, if set, receives every ring built through this Builder's
// diagnostic lines (non-power-of-two resize warnings, trash-on-hardware
// no-ops) as tracelog Events instead of going nowhere.
type RingBuilder struct {
	Sink tracelog.Sink
}

func (b RingBuilder) Build(in BuildInput) (BuildOutput, error) {
	var p RingParams
	if len(in.ParamsJSON) > 0 {
		if err := json.Unmarshal(in.ParamsJSON, &p); err != nil {
			return BuildOutput{}, &errcode.E{C: errcode.InvalidPayload, Op: "RingBuilder.Build", Msg: "decode ring params", Err: err}
		}
	}
	if p.Len <= 0 {
		return BuildOutput{}, &errcode.E{C: errcode.InvalidParams, Op: "RingBuilder.Build", Msg: fmt.Sprintf("ring %q: len must be positive", in.DeviceID)}
	}

	flags := ring.Default
	if len(p.Flags) > 0 {
		flags = 0
		for _, name := range p.Flags {
			bit, ok := flagNames[name]
			if !ok {
				return BuildOutput{}, &errcode.E{C: errcode.InvalidParams, Op: "RingBuilder.Build", Msg: fmt.Sprintf("ring %q: unknown flag %q", in.DeviceID, name)}
			}
			flags |= bit
		}
	}

	cfg := ring.Config{
		Len:        p.Len,
		Flags:      flags,
		ChunkRead:  p.ChunkRead,
		ChunkWrite: p.ChunkWrite,
		Trace:      tracelog.TraceFunc(b.Sink, "ring:"+in.DeviceID),
	}
	return BuildOutput{Ring: ring.NewRingWithConfig(cfg)}, nil
}
