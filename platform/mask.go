// File: platform/mask.go
// Author: coreactor contributors
// License: Apache-2.0
//
// MaskPlatform is the concrete Platform backing production use: an
// enabled-core bitmask plus a designated master core, with pinning and
// naming delegated to platform-specific hook functions
// (platformPin/platformUnpin/platformSetThreadName/...), the same
// dispatcher shape as affinity.go delegating to
// platformPinCurrentThread et al.

package platform

import (
	"fmt"
	"log"
	"runtime"
	"sync"
)

// AvailableCoreMask reports which logical cores the host actually
// exposes (bits 0..runtime.NumCPU()-1), independent of any requested
// reactor mask. lifecycle.ParseMask intersects the caller's requested
// mask against this to silently clear bits the machine cannot satisfy,
// the same way the original intersects the requested mask against
// EAL's discovered lcore set.
func AvailableCoreMask() uint64 {
	n := runtime.NumCPU()
	if n >= MaxCores {
		n = MaxCores
	}
	var mask uint64
	for c := 0; c < n; c++ {
		mask |= 1 << uint(c)
	}
	return mask
}

// MaxCores bounds the core space a mask can address, matching
// reactor.MaxCores (kept independent to avoid a platform->reactor
// import).
const MaxCores = 64

// MaskPlatform implements Platform over a fixed bitmask of enabled
// cores and a master core designation.
type MaskPlatform struct {
	mask   uint64
	master uint32
	wg     sync.WaitGroup
}

// NewMaskPlatform constructs a MaskPlatform. Nothing is validated here:
// lifecycle.Runtime.Init rejects a parsed mask whose master bit is
// cleared.
func NewMaskPlatform(mask uint64, master uint32) *MaskPlatform {
	return &MaskPlatform{mask: mask, master: master}
}

func (m *MaskPlatform) MasterCore() uint32 { return m.master }

func (m *MaskPlatform) IsCoreEnabled(core uint32) bool {
	if core >= MaxCores {
		return false
	}
	return m.mask&(1<<core) != 0
}

func (m *MaskPlatform) ForEachEnabledCore(fn func(core uint32)) {
	for c := uint32(0); c < MaxCores; c++ {
		if m.IsCoreEnabled(c) {
			fn(c)
		}
	}
}

func (m *MaskPlatform) ForEachEnabledSlave(fn func(core uint32)) {
	m.ForEachEnabledCore(func(core uint32) {
		if core != m.master {
			fn(core)
		}
	})
}

func (m *MaskPlatform) CurrentCore() (uint32, error) {
	return platformCurrentCore()
}

// LaunchOnCore starts fn on a dedicated, OS-thread-locked goroutine
// pinned to core. A pin or rename failure is logged and non-fatal -
// the reactor still runs, just without the affinity guarantee.
func (m *MaskPlatform) LaunchOnCore(core uint32, fn func()) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := m.Pin(core); err != nil {
			log.Printf("platform: pin core %d: %v", core, err)
		}
		if err := m.SetThreadName(fmt.Sprintf("reactor %d", core)); err != nil {
			log.Printf("platform: name core %d: %v", core, err)
		}
		fn()
	}()
}

func (m *MaskPlatform) WaitAllCores() {
	m.wg.Wait()
}

func (m *MaskPlatform) SetThreadName(name string) error {
	return platformSetThreadName(name)
}

func (m *MaskPlatform) Pin(core uint32) error {
	if !m.IsCoreEnabled(core) {
		return fmt.Errorf("platform: core %d is not enabled", core)
	}
	return platformPin(core)
}

func (m *MaskPlatform) Unpin() error {
	return platformUnpin()
}

func (m *MaskPlatform) NUMANodeOf(core uint32) int {
	return platformNUMANodeOf(core)
}

func (m *MaskPlatform) NUMANodes() int {
	return platformNUMANodes()
}
