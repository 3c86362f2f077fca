// Package hwuart is the concrete hardware peer the ring buffer's
// hardware↔software scenarios (spec.md §1) are demonstrated against: a
// real UART RX interrupt feeding a ring.Ring configured with a hardware
// writer, and a ring.Ring drained by a real UART TX path. It follows the
// teacher's host/MCU split (services/hal/internal/platform/
// factories_host.go vs factories_rp2xxx.go): this file holds the
// build-tag-independent pump logic, hwuart_host.go and hwuart_rp2xxx.go
// each supply a Port.
package hwuart

import (
	"context"
	"time"

	"cbufring/ring"
)

// Port is the subset of github.com/jangala-dev/tinygo-uartx's UART API
// the pumps below need, grounded on
// services/hal/internal/halcore.UARTPort (the interface the teacher's
// uartio.Worker and platform factories share between a real rp2xxx UART
// and a host-side simulation).
type Port interface {
	Readable() <-chan struct{}
	RecvSomeContext(ctx context.Context, p []byte) (int, error)
	Write(p []byte) (int, error)
}

// RXPump copies bytes arriving on a UART port into a ring.Ring that
// declares a hardware writer, using ring.WriteRegion/Skip the way a DMA
// completion handler would rather than ring.Write (spec.md §3's
// software↔hardware scenario; SPEC_FULL.md §4.12's WriteRegion
// supplement).
type RXPump struct {
	port Port
	ring *ring.Ring
	buf  []byte
}

// NewRXPump wires port's RX side to r, clearing SWIsWriter on r so the
// ring's read path performs cache-invalidate-before-copy on every drain
// (spec.md §4.4's hw_writer branch).
func NewRXPump(port Port, r *ring.Ring, maxFrame int) *RXPump {
	if maxFrame <= 0 {
		maxFrame = 256
	}
	r.ClearFlags(ring.SWIsWriter)
	return &RXPump{port: port, ring: r, buf: make([]byte, maxFrame)}
}

// Run pumps RX data into the ring until ctx is done. Each receive is
// bounded to 250ms so a cancelled context unblocks the pump promptly,
// mirroring uartio.Worker.Register's per-receive timeout.
func (p *RXPump) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.port.Readable():
			rctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
			n, err := p.port.RecvSomeContext(rctx, p.buf)
			cancel()
			if err != nil || n <= 0 {
				continue
			}
			depositRegion(p.ring, p.buf[:n])
		}
	}
}

// depositRegion stages data directly into r's write-side region and
// commits it with Skip, splitting across the wrap boundary exactly as
// ring.writeSegment would on the software path. Shared by every
// hardware-writer pump in this package (RXPump, I2CStreamPump) since
// the DMA-style staging discipline doesn't depend on the transport.
func depositRegion(r *ring.Ring, data []byte) {
	for len(data) > 0 {
		region := r.WriteRegion()
		if region.Len() == 0 {
			return // ring full: the data is lost, as with a real overrun
		}
		n := copy(region.First, data)
		data = data[n:]
		if n < len(region.First) {
			r.Skip(true, n)
			continue
		}
		if len(region.Second) > 0 && len(data) > 0 {
			m := copy(region.Second, data)
			data = data[m:]
			n += m
		}
		r.Skip(true, n)
	}
}

// TXDrain writes bytes read from a ring.Ring out over a UART port,
// blocking on the ring's event between drains. Software is the reader
// here (it pulls bytes out and hands them to the UART write call
// itself), so r keeps its default SWIsReader; only a true DMA-driven TX
// path — which reads cbuf->buf directly and never calls ring.ReadInto —
// would clear it, symmetric to RXPump's hardware writer.
type TXDrain struct {
	port Port
	ring *ring.Ring
	buf  []byte
}

// NewTXDrain wires r's read side to port.
func NewTXDrain(port Port, r *ring.Ring, chunk int) *TXDrain {
	if chunk <= 0 {
		chunk = 256
	}
	return &TXDrain{port: port, ring: r, buf: make([]byte, chunk)}
}

// Run drains r into the UART port until ctx is done.
func (d *TXDrain) Run(ctx context.Context) {
	for ctx.Err() == nil {
		n := d.ring.ReadInto(d.buf, true)
		if n == 0 {
			continue
		}
		if _, err := d.port.Write(d.buf[:n]); err != nil {
			return
		}
	}
}
