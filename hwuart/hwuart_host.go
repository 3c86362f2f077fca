//go:build !rp2040 && !rp2350

package hwuart

import (
	"context"
	"sync"
)

// simPort is a host-side Port simulation, adapted from
// services/hal/internal/platform/factories_host.go's simUART: a byte
// queue fed by Inject (standing in for bytes arriving on the wire) and
// drained by RecvSomeContext the same way a real UART's RX ring would be.
type simPort struct {
	mu sync.Mutex
	rx []byte
	rd chan struct{}
	tx [][]byte
}

// NewSimPort returns a Port usable in host-side tests in place of real
// silicon.
func NewSimPort() *simPort {
	return &simPort{rd: make(chan struct{}, 1)}
}

// Inject appends b to the simulated RX queue and wakes any pending
// Readable/RecvSomeContext waiter.
func (s *simPort) Inject(b []byte) {
	s.mu.Lock()
	s.rx = append(s.rx, b...)
	s.mu.Unlock()
	select {
	case s.rd <- struct{}{}:
	default:
	}
}

func (s *simPort) buffered() int {
	s.mu.Lock()
	n := len(s.rx)
	s.mu.Unlock()
	return n
}

func (s *simPort) read(p []byte) int {
	s.mu.Lock()
	n := copy(p, s.rx)
	s.rx = s.rx[n:]
	s.mu.Unlock()
	return n
}

func (s *simPort) Readable() <-chan struct{} { return s.rd }

func (s *simPort) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	if s.buffered() > 0 {
		return s.read(p), nil
	}
	select {
	case <-s.rd:
		return s.read(p), nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

func (s *simPort) Write(p []byte) (int, error) {
	s.mu.Lock()
	s.tx = append(s.tx, append([]byte(nil), p...))
	s.mu.Unlock()
	return len(p), nil
}

// Sent returns every slice handed to Write so far, for test assertions.
func (s *simPort) Sent() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.tx...)
}
