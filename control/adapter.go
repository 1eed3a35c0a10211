// control/adapter.go
// Author: coreactor contributors
//
// ControlAdapter and DebugAdapter satisfy api.Control and api.Debug by
// composing this package's ConfigStore/MetricsRegistry/DebugProbes/
// Recorder primitives - the same adapter-over-primitives shape the
// teacher used to bridge its internal stores to the api package
// contracts.

package control

// ControlAdapter implements api.Control over a ConfigStore and a
// MetricsRegistry.
type ControlAdapter struct {
	config  *ConfigStore
	metrics *MetricsRegistry
}

// NewControlAdapter constructs a ControlAdapter with fresh backing
// stores.
func NewControlAdapter() *ControlAdapter {
	return &ControlAdapter{
		config:  NewConfigStore(),
		metrics: NewMetricsRegistry(),
	}
}

// GetConfig returns the current configuration snapshot.
func (a *ControlAdapter) GetConfig() map[string]any { return a.config.GetSnapshot() }

// SetConfig merges new configuration values and triggers reload hooks.
func (a *ControlAdapter) SetConfig(cfg map[string]any) { a.config.SetConfig(cfg) }

// Stats returns the current metrics snapshot.
func (a *ControlAdapter) Stats() map[string]any { return a.metrics.GetSnapshot() }

// OnReload registers a config-change listener.
func (a *ControlAdapter) OnReload(fn func()) { a.config.OnReload(fn) }

// SetMetric sets or updates a metric, for callers that compute stats
// (e.g. lifecycle.Runtime reporting its core count and mask).
func (a *ControlAdapter) SetMetric(key string, value any) { a.metrics.Set(key, value) }

// DebugAdapter implements api.Debug over a DebugProbes registry and a
// Recorder.
type DebugAdapter struct {
	probes   *DebugProbes
	recorder *Recorder
}

// NewDebugAdapter constructs a DebugAdapter backed by recorder.
func NewDebugAdapter(recorder *Recorder) *DebugAdapter {
	return &DebugAdapter{probes: NewDebugProbes(), recorder: recorder}
}

// DumpState returns the output of every registered probe.
func (a *DebugAdapter) DumpState() map[string]any { return a.probes.DumpState() }

// RegisterProbe installs a named debug hook.
func (a *DebugAdapter) RegisterProbe(name string, fn func() any) { a.probes.RegisterProbe(name, fn) }

// RecentEvents returns the recorder's current trace, oldest first.
func (a *DebugAdapter) RecentEvents() []string { return a.recorder.RecentEvents() }
