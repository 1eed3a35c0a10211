// File: lifecycle/lifecycle_test.go
// Author: coreactor contributors
// License: Apache-2.0

package lifecycle

import (
	"testing"
	"time"

	"github.com/coreactor/coreactor/platform"
)

// TestInitMaskParseScenarios verifies: mask 0x6 on a machine with
// cores {0,1,2} and master=1 succeeds with count 2; mask 0x1 with
// master=0 succeeds with count 1; mask 0x4 with master=1 (master bit
// missing) fails.
func TestInitMaskParseScenarios(t *testing.T) {
	t.Run("0x6 succeeds with count 2", func(t *testing.T) {
		p := platform.NewFake(0x7, 1)
		rt := New(p, WithEventPoolCapacity(64), WithEventQueueCapacity(16), WithPollerRingCapacity(16))
		if err := rt.Init("0x6"); err != nil {
			t.Fatalf("Init(0x6) = %v, want success", err)
		}
		if rt.GetCoreMask() != 0x6 {
			t.Fatalf("GetCoreMask() = %#x, want 0x6", rt.GetCoreMask())
		}
		if rt.GetCoreCount() != 2 {
			t.Fatalf("GetCoreCount() = %d, want 2", rt.GetCoreCount())
		}
	})

	t.Run("0x1 succeeds with count 1", func(t *testing.T) {
		p := platform.NewFake(0x7, 0)
		rt := New(p, WithEventPoolCapacity(64), WithEventQueueCapacity(16), WithPollerRingCapacity(16))
		if err := rt.Init("0x1"); err != nil {
			t.Fatalf("Init(0x1) = %v, want success", err)
		}
		if rt.GetCoreCount() != 1 {
			t.Fatalf("GetCoreCount() = %d, want 1", rt.GetCoreCount())
		}
	})

	t.Run("0x4 fails, master bit missing", func(t *testing.T) {
		p := platform.NewFake(0x7, 1)
		rt := New(p, WithEventPoolCapacity(64), WithEventQueueCapacity(16), WithPollerRingCapacity(16))
		if err := rt.Init("0x4"); err == nil {
			t.Fatal("Init(0x4) succeeded, want failure (master core bit 1 not set)")
		}
		if rt.State() != StateInvalid {
			t.Fatalf("state after failed Init = %s, want still INVALID", stateName(rt.State()))
		}
	})
}

// TestStateMachineMonotone verifies state only ever moves forward
// through INVALID -> INITIALIZED -> RUNNING -> EXITING -> SHUTDOWN,
// never backward, and Fini is permitted only from SHUTDOWN and leaves
// the state there.
func TestStateMachineMonotone(t *testing.T) {
	p := platform.NewFake(0x3, 0)
	rt := New(p, WithEventPoolCapacity(64), WithEventQueueCapacity(16), WithPollerRingCapacity(16))

	if rt.State() != StateInvalid {
		t.Fatalf("initial state = %s, want INVALID", stateName(rt.State()))
	}
	if err := rt.Init("0x3"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if rt.State() != StateInitialized {
		t.Fatalf("state after Init = %s, want INITIALIZED", stateName(rt.State()))
	}
	if err := rt.Fini(); err == nil {
		t.Fatal("Fini from INITIALIZED should fail (only SHUTDOWN permits it)")
	}

	p.SetCurrentCoreForTest(0)
	done := make(chan error, 1)
	go func() { done <- rt.Start() }()

	waitForState(t, rt, StateRunning, time.Second)
	rt.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Stop")
	}
	if rt.State() != StateShutdown {
		t.Fatalf("state after Start returns = %s, want SHUTDOWN", stateName(rt.State()))
	}
	if err := rt.Fini(); err != nil {
		t.Fatalf("Fini from SHUTDOWN failed: %v", err)
	}
	if rt.State() != StateShutdown {
		t.Fatalf("state after Fini = %s, want SHUTDOWN", stateName(rt.State()))
	}
}

// TestStartRequiresMasterCore verifies Start requires the caller to be
// pinned to the master core.
func TestStartRequiresMasterCore(t *testing.T) {
	p := platform.NewFake(0x3, 1)
	rt := New(p, WithEventPoolCapacity(64), WithEventQueueCapacity(16), WithPollerRingCapacity(16))
	if err := rt.Init("0x3"); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	p.SetCurrentCoreForTest(0)
	if err := rt.Start(); err == nil {
		t.Fatal("Start from a non-master core should fail")
	}
	if rt.State() != StateInitialized {
		t.Fatalf("state after rejected Start = %s, want still INITIALIZED", stateName(rt.State()))
	}
}

func waitForState(t *testing.T, rt *Runtime, want uint32, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if rt.State() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("state never reached %s, stuck at %s", stateName(want), stateName(rt.State()))
}
