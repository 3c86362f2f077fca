package hwuart

import (
	"context"
	"time"

	"tinygo.org/x/drivers"

	"cbufring/ring"
)

// I2CStreamPump polls an I2C peripheral's streaming-data register over
// drivers.I2C and deposits whatever bytes are available into a ring.Ring
// configured with a hardware writer, the same WriteRegion/Skip staging
// depositRegion gives RXPump. It's grounded on
// drivers/aht20.Device's "bus drivers.I2C" field and its Tx(addr, w, r)
// register-read convention (drivers/aht20/aht20.go), generalized from a
// fixed two-register sensor read into an open-ended byte stream: first
// Tx reads countReg to learn how many bytes are pending, then a second
// Tx reads that many bytes from dataReg.
type I2CStreamPump struct {
	bus      drivers.I2C
	addr     uint16
	countReg byte
	dataReg  byte
	ring     *ring.Ring
	poll     time.Duration
	buf      []byte
}

// NewI2CStreamPump wires bus/addr's streaming registers to r, clearing
// SWIsWriter on r so every drain invalidates cache before copying
// (spec.md §4.4's hw_writer branch) exactly as NewRXPump does for a
// UART peer. countReg and dataReg name the peripheral's pending-byte-
// count register and its FIFO data register respectively; maxFrame
// bounds a single poll's read and defaults to 256 like NewRXPump.
func NewI2CStreamPump(bus drivers.I2C, addr uint16, countReg, dataReg byte, r *ring.Ring, maxFrame int, poll time.Duration) *I2CStreamPump {
	if maxFrame <= 0 {
		maxFrame = 256
	}
	if poll <= 0 {
		poll = 20 * time.Millisecond
	}
	r.ClearFlags(ring.SWIsWriter)
	return &I2CStreamPump{
		bus: bus, addr: addr, countReg: countReg, dataReg: dataReg,
		ring: r, poll: poll, buf: make([]byte, maxFrame),
	}
}

// Run polls the peripheral every p.poll until ctx is done, depositing
// whatever each poll collects into the ring.
func (p *I2CStreamPump) Run(ctx context.Context) {
	ticker := time.NewTicker(p.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.pollOnce()
		}
	}
}

// pollOnce reads the pending-byte count, then that many bytes from the
// data register, and stages them into the ring. I2C errors are
// swallowed the same way RXPump drops a failed RecvSomeContext: a
// single bad poll is not fatal to the stream.
func (p *I2CStreamPump) pollOnce() {
	var countBuf [1]byte
	if err := p.bus.Tx(p.addr, []byte{p.countReg}, countBuf[:]); err != nil {
		return
	}
	n := int(countBuf[0])
	if n <= 0 {
		return
	}
	if n > len(p.buf) {
		n = len(p.buf)
	}
	if err := p.bus.Tx(p.addr, []byte{p.dataReg}, p.buf[:n]); err != nil {
		return
	}
	depositRegion(p.ring, p.buf[:n])
}
