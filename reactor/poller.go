// File: reactor/poller.go
// Author: coreactor contributors
// License: Apache-2.0
//
// Poller is a long-lived, round-robin re-invoked function, and the
// functions below are its lifecycle protocol: register, unregister,
// and migrate, each implemented as an event posted to and executed on
// the poller's owning core. That funnel is what lets PollerRing stay free
// of atomics (see pollerring.go) - every structural mutation to a
// given ring happens on that ring's own reactor goroutine.
//
// Grounded on original_source/lib/event/reactor.c's
// _spdk_event_add_poller / _spdk_event_remove_poller /
// spdk_poller_unregister / _spdk_poller_migrate, which all follow the
// same "build an event, spdk_event_call it, optionally chain a
// completion" shape reproduced here with Table.Allocate/Table.Call.

package reactor

import "sync/atomic"

// Poller is a registered unit of recurring work. Fn is invoked once
// per turn; it must not block.
type Poller struct {
	Name string
	Fn   Func
	Arg  any

	owningCore atomic.Uint32
	registered atomic.Bool
}

// NewPoller constructs an unregistered poller.
func NewPoller(name string, fn Func, arg any) *Poller {
	return &Poller{Name: name, Fn: fn, Arg: arg}
}

// OwningCore returns the core the poller is currently registered on.
// Meaningless if the poller is not registered.
func (p *Poller) OwningCore() uint32 { return p.owningCore.Load() }

// Registered reports whether the poller is currently live on some
// reactor's active-poller ring.
func (p *Poller) Registered() bool { return p.registered.Load() }

// RegisterPoller posts an event to core that appends p to that core's
// active-poller ring, then, if complete is non-nil, dispatches it -
// the Go analogue of _spdk_event_add_poller. Calling Register on a
// poller that is already registered is a caller error (a poller may
// only ever be live on one ring at a time) and is not guarded against
// here, the same way the original does not guard it.
func (t *Table) RegisterPoller(core uint32, p *Poller, complete *Event) {
	ev := t.Allocate(core, func(ev *Event) {
		r := t.Get(ev.TargetCore)
		if !r.pollers.Enqueue(p) {
			t.Pool.onFatal("active-poller ring full on register",
				map[string]any{"core": ev.TargetCore, "poller": p.Name})
			return
		}
		p.owningCore.Store(ev.TargetCore)
		p.registered.Store(true)
		if ev.Next != nil {
			t.Call(ev.Next)
		}
	}, nil, nil, complete)
	t.Call(ev)
}

// UnregisterPoller posts an event to core that sweeps p out of that
// core's active-poller ring. Because the ring exposes no random-access
// removal, the sweep rotates every other poller back onto the ring in
// their original relative order and drops p - the same single full
// rotation _spdk_event_remove_poller performs in the original.
func (t *Table) UnregisterPoller(core uint32, p *Poller, complete *Event) {
	ev := t.Allocate(core, func(ev *Event) {
		r := t.Get(ev.TargetCore)
		n := r.pollers.Len()
		found := false
		for i := 0; i < n; i++ {
			cur, ok := r.pollers.Dequeue()
			if !ok {
				break
			}
			if cur == p {
				found = true
				continue
			}
			r.pollers.Enqueue(cur)
		}
		if found {
			p.owningCore.Store(0)
			p.registered.Store(false)
		}
		if ev.Next != nil {
			t.Call(ev.Next)
		}
	}, nil, nil, complete)
	t.Call(ev)
}

// MigratePoller moves p from its current owning core to to, expressed
// as an unregister whose completion triggers the register on the new
// core - the same two-hop shape as _spdk_poller_migrate, which posts
// the removal to the old core and chains the addition as its
// continuation.
func (t *Table) MigratePoller(to uint32, p *Poller, complete *Event) {
	from := p.owningCore.Load()
	registerEv := t.Allocate(to, func(ev *Event) {
		r := t.Get(ev.TargetCore)
		if !r.pollers.Enqueue(p) {
			t.Pool.onFatal("active-poller ring full on migrate",
				map[string]any{"core": ev.TargetCore, "poller": p.Name})
			return
		}
		p.owningCore.Store(ev.TargetCore)
		p.registered.Store(true)
		if ev.Next != nil {
			t.Call(ev.Next)
		}
	}, nil, nil, complete)

	unregisterEv := t.Allocate(from, func(ev *Event) {
		r := t.Get(ev.TargetCore)
		n := r.pollers.Len()
		for i := 0; i < n; i++ {
			cur, ok := r.pollers.Dequeue()
			if !ok {
				break
			}
			if cur == p {
				continue
			}
			r.pollers.Enqueue(cur)
		}
		if ev.Next != nil {
			t.Call(ev.Next)
		}
	}, nil, nil, registerEv)

	t.Call(unregisterEv)
}
