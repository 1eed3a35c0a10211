// File: platform/fake_test.go
// Author: coreactor contributors
// License: Apache-2.0

package platform

import (
	"sync/atomic"
	"testing"
)

func TestFakeEnabledCoreIteration(t *testing.T) {
	f := NewFake(0x6, 1) // cores 1,2

	var seen []uint32
	f.ForEachEnabledCore(func(c uint32) { seen = append(seen, c) })
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("ForEachEnabledCore = %v, want [1 2]", seen)
	}

	seen = nil
	f.ForEachEnabledSlave(func(c uint32) { seen = append(seen, c) })
	if len(seen) != 1 || seen[0] != 2 {
		t.Fatalf("ForEachEnabledSlave = %v, want [2] (master 1 excluded)", seen)
	}
}

func TestFakeLaunchOnCoreWaitsForCompletion(t *testing.T) {
	f := NewFake(0x3, 0)
	var ran atomic.Int32
	const n = 10
	for i := 0; i < n; i++ {
		f.LaunchOnCore(uint32(i%2), func() { ran.Add(1) })
	}
	f.WaitAllCores()
	if ran.Load() != n {
		t.Fatalf("ran = %d, want %d (WaitAllCores must block until every goroutine finishes)", ran.Load(), n)
	}
}

func TestFakePinRecordsCalls(t *testing.T) {
	f := NewFake(0x3, 0)
	if f.IsPinned(1) {
		t.Fatal("core 1 should not be pinned before any Pin call")
	}
	if err := f.Pin(1); err != nil {
		t.Fatalf("Pin returned error: %v", err)
	}
	if !f.IsPinned(1) {
		t.Fatal("core 1 should be pinned after Pin(1)")
	}
}
