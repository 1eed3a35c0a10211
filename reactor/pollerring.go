// File: reactor/pollerring.go
// Author: coreactor contributors
// License: Apache-2.0
//
// PollerRing is the active-poller ring. Both ends are always the
// owning reactor's own loop goroutine, never two different goroutines
// and never two overlapping calls - register, unregister, migrate, and
// the per-iteration advance step are all serialized on that one
// goroutine by construction (every structural mutation is funneled
// through an event executed there). That makes the plain slice-backed
// circular buffer below correct with no atomics, the same way the
// original source relies on RING_F_SP_ENQ|RING_F_SC_DEQ to avoid CAS on
// this particular ring (original_source/lib/event/reactor.c).
//
// Grounded on the single-threaded ring discipline of
// LeGamerDc-gio/internal/ring/ring.go, which uses an unguarded
// circular buffer on the same reasoning: single owning goroutine.

package reactor

// DefaultPollerRingCapacity is a generous default for the expected
// poller population of a single core.
const DefaultPollerRingCapacity = 4096

// PollerRing is the bounded FIFO of poller handles owned by one reactor.
type PollerRing struct {
	buf  []*Poller
	mask int
	head int
	tail int
	n    int
}

// NewPollerRing allocates a ring of the given capacity (rounded up to a
// power of two).
func NewPollerRing(capacity int) *PollerRing {
	if capacity <= 0 {
		capacity = DefaultPollerRingCapacity
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &PollerRing{buf: make([]*Poller, size), mask: size - 1}
}

// Enqueue appends p at the tail; false if the ring is full.
func (r *PollerRing) Enqueue(p *Poller) bool {
	if r.n == len(r.buf) {
		return false
	}
	r.buf[r.tail] = p
	r.tail = (r.tail + 1) & r.mask
	r.n++
	return true
}

// Dequeue removes and returns the head poller.
func (r *PollerRing) Dequeue() (*Poller, bool) {
	if r.n == 0 {
		return nil, false
	}
	p := r.buf[r.head]
	r.buf[r.head] = nil
	r.head = (r.head + 1) & r.mask
	r.n--
	return p, true
}

// Len returns the number of pollers currently in the ring.
func (r *PollerRing) Len() int { return r.n }

// Cap returns the ring's fixed capacity.
func (r *PollerRing) Cap() int { return len(r.buf) }
