// File: lifecycle/state.go
// Author: coreactor contributors
// License: Apache-2.0
//
// The state word encodes the global lifecycle state machine
// (INVALID->INITIALIZED->RUNNING->EXITING->SHUTDOWN) as a plain
// atomic.Uint32 with relaxed-equivalent load/store - the loop tolerates
// a stale read by one iteration, so there is no need for anything
// stronger than sync/atomic's default ordering.

package lifecycle

import "github.com/coreactor/coreactor/reactor"

// State values, in the order the lifecycle moves through.
const (
	StateInvalid     uint32 = 0
	StateInitialized uint32 = 1
	StateRunning     uint32 = reactor.StateRunning // 2
	StateExiting     uint32 = 3
	StateShutdown    uint32 = 4
)

func stateName(s uint32) string {
	switch s {
	case StateInvalid:
		return "INVALID"
	case StateInitialized:
		return "INITIALIZED"
	case StateRunning:
		return "RUNNING"
	case StateExiting:
		return "EXITING"
	case StateShutdown:
		return "SHUTDOWN"
	default:
		return "UNKNOWN"
	}
}
