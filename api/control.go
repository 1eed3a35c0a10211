// File: api/control.go
// Package api defines the dynamic configuration and metrics contract.
// Author: coreactor contributors
// License: Apache-2.0

package api

// Control manages dynamic configuration and exposes runtime metrics for
// the reactor runtime: lifecycle.Runtime sets the core count, the core
// mask, and the event pool capacity at Init.
type Control interface {
	GetConfig() map[string]any
	SetConfig(cfg map[string]any)
	Stats() map[string]any
	OnReload(fn func())
}
