// File: reactor/poller_test.go
// Author: coreactor contributors
// License: Apache-2.0

package reactor

import (
	"sync"
	"testing"
)

func newTestTable(pollerCapacity, queueCapacity int, cores ...uint32) (*Table, map[uint32]*Reactor) {
	pool := NewPool(4096, nil)
	table := NewTable(pool)
	reactors := make(map[uint32]*Reactor, len(cores))
	for _, c := range cores {
		reactors[c] = NewReactor(table, c, queueCapacity, pollerCapacity)
	}
	return table, reactors
}

// TestPollerRegisterViaEvent exercises the register protocol: the
// event posted to the target core installs the poller and dispatches
// a completion.
func TestPollerRegisterViaEvent(t *testing.T) {
	table, reactors := newTestTable(16, 16, 0, 1)
	p := NewPoller("p", func(*Event) {}, nil)

	var completed bool
	var mu sync.Mutex
	complete := table.Allocate(0, func(*Event) {
		mu.Lock()
		completed = true
		mu.Unlock()
	}, nil, nil, nil)

	table.RegisterPoller(1, p, complete)
	reactors[1].RunAllQueued()

	if !p.Registered() || p.OwningCore() != 1 {
		t.Fatalf("poller not registered on core 1: registered=%v owning=%d", p.Registered(), p.OwningCore())
	}
	if reactors[1].Pollers().Len() != 1 {
		t.Fatalf("active-poller ring on core 1 has %d entries, want 1", reactors[1].Pollers().Len())
	}

	reactors[0].RunAllQueued()
	mu.Lock()
	defer mu.Unlock()
	if !completed {
		t.Fatal("completion event never ran on core 0")
	}
}

// TestPollerUnregisterPreservesOrder verifies unregistering p3 from a
// five-poller ring leaves the survivors in their original relative
// order.
func TestPollerUnregisterPreservesOrder(t *testing.T) {
	table, reactors := newTestTable(16, 16, 0)
	var order []string
	record := func(name string) Func {
		return func(*Event) { order = append(order, name) }
	}
	pollers := make([]*Poller, 5)
	for i := 0; i < 5; i++ {
		name := string(rune('1' + i))
		pollers[i] = NewPoller(name, record(name), nil)
		table.RegisterPoller(0, pollers[i], nil)
		reactors[0].RunAllQueued()
	}

	table.UnregisterPoller(0, pollers[2], nil)
	reactors[0].RunAllQueued()

	if reactors[0].Pollers().Len() != 4 {
		t.Fatalf("ring has %d pollers after unregister, want 4", reactors[0].Pollers().Len())
	}

	order = nil
	for i := 0; i < 4; i++ {
		reactors[0].advancePoller()
	}
	want := []string{"1", "2", "4", "5"}
	if len(order) != len(want) {
		t.Fatalf("advance order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("advance order = %v, want %v", order, want)
		}
	}
}

// TestPollerMigrateAtomicity verifies that at no point does the poller
// appear in both rings, and it ends up exclusively on the new core
// once the completion fires.
func TestPollerMigrateAtomicity(t *testing.T) {
	table, reactors := newTestTable(16, 16, 1, 2)
	p := NewPoller("p", func(*Event) {}, nil)
	table.RegisterPoller(1, p, nil)
	reactors[1].RunAllQueued()

	var completedOn uint32
	var mu sync.Mutex
	complete := table.Allocate(2, func(ev *Event) {
		mu.Lock()
		completedOn = ev.TargetCore
		mu.Unlock()
	}, nil, nil, nil)

	table.MigratePoller(2, p, complete)

	// Run the unregister half on the old core (1). The poller must not
	// be observably present on either ring at this intermediate point.
	reactors[1].RunAllQueued()
	if reactors[1].Pollers().Len() != 0 {
		t.Fatalf("core 1's ring still holds %d pollers after unregister half of migrate", reactors[1].Pollers().Len())
	}
	if reactors[2].Pollers().Len() != 0 {
		t.Fatal("core 2's ring must not contain the poller before its register half has run")
	}

	// Run the register half on the new core (2); the completion it
	// chains is enqueued mid-drain, so it waits for a second pass
	// under the snapshot-then-drain discipline.
	reactors[2].RunAllQueued()
	reactors[2].RunAllQueued()

	if p.OwningCore() != 2 {
		t.Fatalf("OwningCore() = %d, want 2", p.OwningCore())
	}
	if reactors[2].Pollers().Len() != 1 {
		t.Fatalf("core 2's ring has %d pollers, want 1", reactors[2].Pollers().Len())
	}
	if reactors[1].Pollers().Len() != 0 {
		t.Fatal("core 1's ring must remain empty after migration completes")
	}

	mu.Lock()
	defer mu.Unlock()
	if completedOn != 2 {
		t.Fatalf("completion ran on core %d, want 2", completedOn)
	}
}
