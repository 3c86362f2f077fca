//go:build rp2040 || rp2350

package hwuart

import (
	"context"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

// rp2Port wraps a real github.com/jangala-dev/tinygo-uartx UART as a
// Port, adapted from
// services/hal/internal/platform/factories_rp2xxx.go's rp2UART.
type rp2Port struct{ u *uartx.UART }

// NewUART0Port configures and returns uartx.UART0 as a Port, enabling its
// RX interrupt ring.
func NewUART0Port(baud uint32) *rp2Port {
	_ = uartx.UART0.Configure(uartx.UARTConfig{BaudRate: baud})
	return &rp2Port{u: uartx.UART0}
}

// NewUART1Port configures and returns uartx.UART1 as a Port.
func NewUART1Port(baud uint32) *rp2Port {
	_ = uartx.UART1.Configure(uartx.UARTConfig{BaudRate: baud})
	return &rp2Port{u: uartx.UART1}
}

func (r *rp2Port) Readable() <-chan struct{} { return r.u.Readable() }

func (r *rp2Port) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	return r.u.RecvSomeContext(ctx, p)
}

func (r *rp2Port) Write(p []byte) (int, error) { return r.u.Write(p) }
