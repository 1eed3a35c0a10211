// File: reactor/ring.go
// Author: coreactor contributors
// License: Apache-2.0
//
// concurrentRing is a bounded MPMC ring buffer, adapted from the
// teacher's sequence-numbered cell design (core/concurrency/ring.go):
// every slot carries its own sequence counter so a CAS on the shared
// head/tail is all that is needed to make both enqueue and dequeue safe
// from an arbitrary number of concurrent callers, with no lock.
//
// It backs the event pool's free list and the per-core event queue:
// both accept concurrent producers (every reactor releases events on
// its own core, concurrently with every other reactor), and the event
// pool also accepts concurrent consumers (any goroutine may acquire an
// event to dispatch).

package reactor

import "sync/atomic"

type ringCell[T any] struct {
	sequence atomic.Uint64
	data     T
}

type concurrentRing[T any] struct {
	head atomic.Uint64
	_    [56]byte
	tail atomic.Uint64
	_    [56]byte

	mask  uint64
	cells []ringCell[T]
}

func newConcurrentRing[T any](size uint64) *concurrentRing[T] {
	size = nextPow2(size)
	r := &concurrentRing[T]{
		mask:  size - 1,
		cells: make([]ringCell[T], size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// enqueue adds item, returning false if the ring is full.
func (r *concurrentRing[T]) enqueue(item T) bool {
	for {
		tail := r.tail.Load()
		cell := &r.cells[tail&r.mask]
		seq := cell.sequence.Load()
		switch diff := int64(seq) - int64(tail); {
		case diff == 0:
			if r.tail.CompareAndSwap(tail, tail+1) {
				cell.data = item
				cell.sequence.Store(tail + 1)
				return true
			}
		case diff < 0:
			return false
		}
	}
}

// dequeue removes and returns the oldest item, ok false if empty.
func (r *concurrentRing[T]) dequeue() (item T, ok bool) {
	for {
		head := r.head.Load()
		cell := &r.cells[head&r.mask]
		seq := cell.sequence.Load()
		switch diff := int64(seq) - int64(head+1); {
		case diff == 0:
			if r.head.CompareAndSwap(head, head+1) {
				item = cell.data
				var zero T
				cell.data = zero
				cell.sequence.Store(head + r.mask + 1)
				return item, true
			}
		case diff < 0:
			return item, false
		}
	}
}

func (r *concurrentRing[T]) len() int {
	return int(r.tail.Load() - r.head.Load())
}

func (r *concurrentRing[T]) cap() int {
	return len(r.cells)
}

func nextPow2(v uint64) uint64 {
	if v < 2 {
		return 2
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}
