// Package control
// Author: coreactor contributors
//
// Hot-reload, runtime metrics, configuration control, and debug introspection
// layer for the reactor runtime. None of this sits on the reactor loop's hot
// path; it is the operator-facing surface a lifecycle.Runtime wires up
// alongside its reactors.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for hot-reload
//   - Metrics telemetry contracts
//   - State export, debug hooks, and probe registration
//   - A bounded recent-events recorder for capacity faults and lifecycle
//     transitions
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
