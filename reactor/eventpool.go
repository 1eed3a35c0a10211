// File: reactor/eventpool.go
// Author: coreactor contributors
// License: Apache-2.0
//
// Pool is the fixed-capacity event allocator. It is grounded on the
// slab allocator of pool/slab_pool.go: a queue-backed free list sized
// once at construction, with every record preallocated so
// Acquire/Release never touch the Go heap on the hot path.
//
// Unlike slabPool, this pool never grows past its free list on
// exhaustion - exhaustion is a fatal invariant violation here, not a
// fallback allocation.

package reactor

// DefaultPoolCapacity is the default sizing for the event pool.
const DefaultPoolCapacity = 262144

// FatalHandler is invoked on any invariant violation treated as fatal:
// pool exhaustion, a full queue/ring that must accept, or a failed
// poller re-enqueue. The default aborts the process; tests may
// substitute a handler that panics or records instead.
type FatalHandler func(reason string, context map[string]any)

// Pool is the process-wide fixed-capacity event allocator.
type Pool struct {
	storage []Event
	free    *concurrentRing[*Event]
	onFatal FatalHandler
}

// NewPool preallocates capacity event records and their free-list ring.
func NewPool(capacity int, onFatal FatalHandler) *Pool {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	if onFatal == nil {
		onFatal = defaultFatalHandler
	}
	p := &Pool{
		storage: make([]Event, capacity),
		free:    newConcurrentRing[*Event](uint64(capacity)),
		onFatal: onFatal,
	}
	for i := range p.storage {
		p.free.enqueue(&p.storage[i])
	}
	return p
}

// Acquire returns a zeroed event record. Exhaustion is fatal: the pool
// is sized for worst-case load and a caller observing exhaustion means
// some other invariant has already broken.
func (p *Pool) Acquire() *Event {
	ev, ok := p.free.dequeue()
	if !ok {
		p.onFatal("event pool exhausted", map[string]any{"capacity": len(p.storage)})
		return nil
	}
	return ev
}

// Release returns ev to the pool. Calling it twice on the same event,
// or on an event still reachable by anyone else, is undefined.
func (p *Pool) Release(ev *Event) {
	ev.reset()
	if !p.free.enqueue(ev) {
		p.onFatal("event pool free-list overflow on release", nil)
	}
}

// Cap returns the pool's fixed capacity.
func (p *Pool) Cap() int { return len(p.storage) }

// Len returns the number of currently free (unacquired) event records.
func (p *Pool) Len() int { return p.free.len() }
