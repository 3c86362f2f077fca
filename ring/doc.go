// Package ring implements a concurrent circular byte buffer: a single
// producer / single consumer FIFO between cooperating actors in a small
// kernel-like environment. A ring may sit between two software actors, a
// software producer and a hardware (DMA) consumer, or a hardware producer
// and a software consumer; in the latter two cases the ring enforces
// explicit cache maintenance so CPU-visible memory stays coherent with
// the peripheral's view.
//
// The ring is not multi-producer or multi-consumer, does not preserve
// message framing (it is byte-oriented), does not grow beyond the
// capacity it was given at construction, does not persist, and makes no
// progress guarantee for a blocked reader if no producer ever writes.
package ring
