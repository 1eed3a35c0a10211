// File: reactor/reactor.go
// Author: coreactor contributors
// License: Apache-2.0
//
// Reactor is the per-core cooperative loop. Each iteration:
//
//  1. snapshot the event queue's occupancy and drain exactly that many
//     events (never more - an event enqueued mid-drain waits for the
//     next iteration, bounding how long any one iteration can run);
//  2. call the externally supplied expired-timer hook;
//  3. advance exactly one poller, round-robin: dequeue it from the
//     active-poller ring, invoke it, then re-enqueue it at the tail -
//     failing to re-enqueue is a fatal invariant violation;
//  4. check the lifecycle state and stop if it is no longer running.
//
// Grounded on original_source/lib/event/reactor.c's _spdk_reactor_run,
// which performs the same four steps in the same order.

package reactor

// StateRunning is the only state value under which a Reactor's Run
// loop continues iterating. Any other value observed at the end of an
// iteration stops the loop. Defined here (rather than imported from a
// lifecycle package) to avoid a package cycle; lifecycle's state word
// uses this same encoding.
const StateRunning uint32 = 2

// TimerHook is called once per iteration to let the owning lifecycle
// manage expired timers. It is intentionally opaque to this package:
// timer management is an external hook, not part of the reactor's own
// responsibilities.
type TimerHook func()

// StateReader reports the current lifecycle state word; Run exits its
// loop once this stops reporting StateRunning.
type StateReader func() uint32

// Reactor is the per-core loop. It owns an event queue and an
// active-poller ring; construction is the only time those are sized,
// matching the "Run() is a dedicated forever-loop" shape the original
// assigns one per pinned OS thread.
type Reactor struct {
	CoreID  uint32
	events  *EventQueue
	pollers *PollerRing
	table   *Table
	onFatal FatalHandler
}

// NewReactor constructs a reactor for core, registered into table.
// queueCapacity and pollerCapacity of 0 select the package defaults.
func NewReactor(table *Table, core uint32, queueCapacity, pollerCapacity int) *Reactor {
	r := &Reactor{
		CoreID:  core,
		events:  NewEventQueue(queueCapacity),
		pollers: NewPollerRing(pollerCapacity),
		table:   table,
		onFatal: table.Pool.onFatal,
	}
	table.Set(r)
	return r
}

// Events exposes the reactor's inbound queue so other cores (via
// Table.Call) and tests can enqueue directly.
func (r *Reactor) Events() *EventQueue { return r.events }

// Pollers exposes the reactor's active-poller ring for inspection;
// mutating it from outside the owning goroutine breaks the
// single-owner invariant the ring relies on.
func (r *Reactor) Pollers() *PollerRing { return r.pollers }

// RunOnce executes exactly one loop iteration and reports whether the
// caller should keep iterating (state is still StateRunning after the
// iteration completes).
func (r *Reactor) RunOnce(timers TimerHook, state StateReader) bool {
	r.drainEvents()

	if timers != nil {
		timers()
	}

	r.advancePoller()

	return state() == StateRunning
}

// drainEvents snapshots the queue's current occupancy and dequeues
// exactly that many events, invoking each in turn. Events enqueued
// while draining are left for the next iteration; this is what keeps a
// single iteration's duration bounded by the queue depth observed at
// its start, not by concurrent producers.
func (r *Reactor) drainEvents() {
	n := r.events.Count()
	for i := 0; i < n; i++ {
		ev, ok := r.events.Dequeue()
		if !ok {
			break
		}
		ev.Fn(ev)
		r.table.Pool.Release(ev)
	}
}

// advancePoller dequeues the head of the active-poller ring, invokes
// it, and re-enqueues it at the tail so the next iteration advances
// the next poller in line. A poller ring that is empty has nothing to
// advance. Failing to re-enqueue (a ring report of "full" on a ring we
// ourselves just removed one element from) can only mean the ring's
// invariant has already been broken elsewhere, so it is fatal.
func (r *Reactor) advancePoller() {
	p, ok := r.pollers.Dequeue()
	if !ok {
		return
	}
	ev := &Event{Fn: p.Fn, Arg1: p.Arg}
	p.Fn(ev)
	if !r.pollers.Enqueue(p) {
		r.onFatal("active-poller ring rejected re-enqueue after advance",
			map[string]any{"core": r.CoreID, "poller": p.Name})
	}
}

// Run loops RunOnce until the lifecycle state is no longer
// StateRunning. It is meant to be the entire body of the OS thread
// pinned to CoreID.
func (r *Reactor) Run(timers TimerHook, state StateReader) {
	for r.RunOnce(timers, state) {
	}
}

// RunAllQueued drains the event queue and advances every currently
// registered poller exactly once, ignoring lifecycle state. It is the
// non-loop surface useful for tests and for a single synchronous pass
// during shutdown drain.
func (r *Reactor) RunAllQueued() {
	r.drainEvents()
	n := r.pollers.Len()
	for i := 0; i < n; i++ {
		r.advancePoller()
	}
}
