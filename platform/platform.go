// File: platform/platform.go
// Author: coreactor contributors
// License: Apache-2.0
//
// Platform isolates the host-dependent side effects a reactor runtime
// needs but shouldn't hardcode: which core a goroutine is currently
// running on, which cores are enabled, pinning an OS thread to one of
// them, and naming it. Grounded on the cross-platform affinity.go
// dispatcher pattern of internal/concurrency/affinity.go - a small
// exported surface backed by build-tag-selected platform*.go files.

package platform

// Platform is injected into lifecycle.Runtime so tests can supply a
// fake with a configurable master core - nothing here may assume the
// master is core 0.
type Platform interface {
	// CurrentCore returns the core the calling goroutine is running on.
	CurrentCore() (uint32, error)

	// MasterCore returns the core designated as master when this
	// Platform was constructed.
	MasterCore() uint32

	// IsCoreEnabled reports whether core is part of the enabled set.
	IsCoreEnabled(core uint32) bool

	// ForEachEnabledCore calls fn once per enabled core, ascending,
	// including the master core.
	ForEachEnabledCore(fn func(core uint32))

	// ForEachEnabledSlave calls fn once per enabled core other than
	// the master core, ascending.
	ForEachEnabledSlave(fn func(core uint32))

	// LaunchOnCore runs fn on a new, OS-thread-locked goroutine pinned
	// to core. It returns once fn has been launched, not once it has
	// completed; callers needing completion use WaitAllCores.
	LaunchOnCore(core uint32, fn func())

	// WaitAllCores blocks until every goroutine started by
	// LaunchOnCore has returned.
	WaitAllCores()

	// SetThreadName best-effort renames the calling OS thread. Failure
	// is never fatal - it is a diagnostic convenience only.
	SetThreadName(name string) error

	// Pin binds the calling OS thread's affinity to core.
	Pin(core uint32) error

	// Unpin clears any affinity constraint set by Pin.
	Unpin() error

	// NUMANodeOf returns the NUMA node core belongs to, or -1 if
	// unknown.
	NUMANodeOf(core uint32) int

	// NUMANodes returns the number of NUMA nodes visible to the
	// process.
	NUMANodes() int
}
