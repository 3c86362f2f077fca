// Command ringsh is a debug console over one or more in-process ring
// buffers, wiring drvreg (ring construction from JSON), dbgconsole (the
// line-oriented shell), and tracelog (diagnostic capture) together the
// way services/hal/cmd/pico-demo wires its HAL service, bus, and device
// adaptors into one runnable demo.
//
// Usage:
//
//	ringsh
//
// Stdin is read as a stream of dbgconsole commands; type "help" for the
// command list. A single ring named "r0" (64 bytes) is pre-registered.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cbufring/dbgconsole"
	"cbufring/drvreg"
	"cbufring/tracelog"
)

func main() {
	rec := tracelog.NewRecorder(4096)
	reg := drvreg.New()
	reg.Register("ring", drvreg.RingBuilder{Sink: rec})

	if _, err := reg.Build(context.Background(), "r0", "ring", json.RawMessage(`{"len": 64}`)); err != nil {
		fmt.Fprintf(os.Stderr, "ringsh: build r0: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("ringsh: ring \"r0\" (64 bytes) ready, type \"help\" for commands")
	console := dbgconsole.New(os.Stdin, os.Stdout, reg.Ring)
	if err := console.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ringsh: %v\n", err)
		os.Exit(1)
	}

	if trace := rec.Drain(rec.Len()); trace != "" {
		fmt.Fprint(os.Stderr, "ringsh: trace log:\n", trace)
	}
}
