// Package intc is the pluggable interrupt-controller operations table
// spec.md §1/§6 names as out of scope: "a way to enable/disable/ack a
// specific interrupt line, pluggable per architecture." It mirrors the
// shape services/hal/internal/halcore's GPIOPin/IRQPin factories give a
// single peripheral line: enable, disable, acknowledge, nothing more.
package intc

import "sync"

// Controller enables, disables, and acknowledges one interrupt line by
// numeric id. A ring's hardware peer (hwuart's RXPump, for instance)
// would disable its line while draining a burst and re-enable it once
// the ring has room, the standard level-triggered-IRQ throttling
// pattern; this module only specifies the table, not a real driver.
type Controller interface {
	EnableIRQ(id int)
	DisableIRQ(id int)
	Ack(id int)
}

// SoftController is an in-memory Controller: enabled-state tracking and
// a running count of each operation, enough to drive and assert against
// in host-side tests without a real NVIC/PLIC behind it.
type SoftController struct {
	mu      sync.Mutex
	enabled map[int]bool
	counts  map[int]struct{ Enable, Disable, Ack int }
}

// NewSoftController returns a Controller with every line initially
// disabled.
func NewSoftController() *SoftController {
	return &SoftController{
		enabled: make(map[int]bool),
		counts:  make(map[int]struct{ Enable, Disable, Ack int }),
	}
}

func (c *SoftController) EnableIRQ(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled[id] = true
	e := c.counts[id]
	e.Enable++
	c.counts[id] = e
}

func (c *SoftController) DisableIRQ(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled[id] = false
	e := c.counts[id]
	e.Disable++
	c.counts[id] = e
}

func (c *SoftController) Ack(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.counts[id]
	e.Ack++
	c.counts[id] = e
}

// Enabled reports whether id is currently enabled.
func (c *SoftController) Enabled(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled[id]
}

// Counts returns how many times EnableIRQ/DisableIRQ/Ack have each been
// called for id, for test assertions.
func (c *SoftController) Counts(id int) (enable, disable, ack int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.counts[id]
	return e.Enable, e.Disable, e.Ack
}
