// File: api/debug.go
// Package api defines the runtime introspection contract.
// Author: coreactor contributors
// License: Apache-2.0

package api

// Debug exposes runtime introspection for production diagnostics: a
// snapshot of named probe values plus a recent-events trace.
type Debug interface {
	// DumpState emits a snapshot of all registered probe values.
	DumpState() map[string]any

	// RegisterProbe installs a named, on-demand debug hook.
	RegisterProbe(name string, fn func() any)

	// RecentEvents returns the most recent diagnostic events recorded by
	// the runtime (lifecycle transitions and fatal-handler invocations
	// such as capacity faults), oldest first, bounded to a fixed trace
	// length. Poller register/unregister/migrate calls are not recorded.
	RecentEvents() []string
}
