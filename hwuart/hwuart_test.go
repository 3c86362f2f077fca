package hwuart

import (
	"context"
	"sync"
	"testing"
	"time"

	"cbufring/ring"
)

func TestRXPumpDepositsIntoRing(t *testing.T) {
	port := NewSimPort()
	r := ring.NewRing(64)
	pump := NewRXPump(port, r, 32)

	if r.Flags()&ring.SWIsWriter != 0 {
		t.Fatalf("NewRXPump must clear SWIsWriter")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pump.Run(ctx)

	port.Inject([]byte("hello"))

	deadline := time.After(time.Second)
	for r.SpaceUsed() < 5 {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for deposit, space_used=%d", r.SpaceUsed())
		case <-time.After(time.Millisecond):
		}
	}

	buf := make([]byte, 5)
	if n := r.ReadInto(buf, false); n != 5 || string(buf) != "hello" {
		t.Fatalf("ReadInto: got %q (%d), want %q", buf[:n], n, "hello")
	}
}

func TestTXDrainWritesOutOfRing(t *testing.T) {
	port := NewSimPort()
	r := ring.NewRing(64)
	r.Write([]byte("world"), false)
	drain := NewTXDrain(port, r, 32)

	ctx, cancel := context.WithCancel(context.Background())
	go drain.Run(ctx)

	deadline := time.After(time.Second)
	for {
		sent := port.Sent()
		if len(sent) > 0 {
			if string(sent[0]) != "world" {
				t.Fatalf("Sent: got %q, want %q", sent[0], "world")
			}
			break
		}
		select {
		case <-deadline:
			cancel()
			t.Fatalf("timed out waiting for drain")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
}

// fakeI2C simulates a streaming peripheral: the first Tx (to countReg)
// reports how many bytes are pending, the second Tx (to dataReg) copies
// them out, draining a fixed backlog one poll at a time.
type fakeI2C struct {
	mu      sync.Mutex
	backlog []byte
	chunk   int
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(w) == 1 && w[0] == 0x00 { // countReg
		n := f.chunk
		if n > len(f.backlog) {
			n = len(f.backlog)
		}
		r[0] = byte(n)
		return nil
	}
	// dataReg: hand back up to len(r) bytes from the backlog.
	n := copy(r, f.backlog)
	f.backlog = f.backlog[n:]
	return nil
}

func TestI2CStreamPumpDepositsIntoRing(t *testing.T) {
	bus := &fakeI2C{backlog: []byte("streamed"), chunk: 4}
	r := ring.NewRing(64)
	pump := NewI2CStreamPump(bus, 0x38, 0x00, 0x01, r, 32, time.Millisecond)

	if r.Flags()&ring.SWIsWriter != 0 {
		t.Fatalf("NewI2CStreamPump must clear SWIsWriter")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go pump.Run(ctx)

	deadline := time.After(time.Second)
	for r.SpaceUsed() < len("streamed") {
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for deposit, space_used=%d", r.SpaceUsed())
		case <-time.After(time.Millisecond):
		}
	}

	buf := make([]byte, len("streamed"))
	if n := r.ReadInto(buf, false); n != len(buf) || string(buf[:n]) != "streamed" {
		t.Fatalf("ReadInto: got %q (%d), want %q", buf[:n], n, "streamed")
	}
}
