// File: reactor/table.go
// Author: coreactor contributors
// License: Apache-2.0
//
// Table is a sparse per-core reactor registry: only entries whose bit
// is set in the core mask are constructed. It is the single place that
// knows how to look up "the reactor for core c", which both Call
// (cross-core dispatch) and the poller protocol need.

package reactor

// MaxCores bounds the logical core space, matching a u64 mask.
const MaxCores = 64

// Table owns the event pool and the sparse set of constructed
// reactors. It is safe for Call to be invoked concurrently from any
// goroutine; Set/Get are intended for single-threaded setup during
// lifecycle Init and are not synchronized.
type Table struct {
	Pool     *Pool
	reactors [MaxCores]*Reactor
}

// NewTable creates a table bound to pool.
func NewTable(pool *Pool) *Table {
	return &Table{Pool: pool}
}

// Set installs r as the reactor for its own CoreID. Called only during
// construction, before Start.
func (t *Table) Set(r *Reactor) {
	t.reactors[r.CoreID] = r
}

// Get returns the reactor for core, or nil if core has no constructed
// reactor (not in the mask).
func (t *Table) Get(core uint32) *Reactor {
	if core >= MaxCores {
		return nil
	}
	return t.reactors[core]
}

// Range invokes fn for every constructed reactor, in ascending core
// order.
func (t *Table) Range(fn func(r *Reactor)) {
	for _, r := range t.reactors {
		if r != nil {
			fn(r)
		}
	}
}

// Allocate draws an event from the pool and fills it.
func (t *Table) Allocate(core uint32, fn Func, arg1, arg2 any, next *Event) *Event {
	ev := t.Pool.Acquire()
	ev.TargetCore = core
	ev.Fn = fn
	ev.Arg1 = arg1
	ev.Arg2 = arg2
	ev.Next = next
	return ev
}

// Call enqueues ev on its target core's queue. A full queue or a
// target core absent from the mask is a fatal invariant violation: the
// queues are sized for worst-case load and the caller is never
// expected to retry.
func (t *Table) Call(ev *Event) {
	r := t.Get(ev.TargetCore)
	if r == nil {
		t.Pool.onFatal("event targets a core with no constructed reactor",
			map[string]any{"target_core": ev.TargetCore})
		return
	}
	if !r.events.Enqueue(ev) {
		t.Pool.onFatal("event queue full on enqueue",
			map[string]any{"target_core": ev.TargetCore, "capacity": r.events.Cap()})
	}
}
