// File: reactor/event.go
// Author: coreactor contributors
// License: Apache-2.0

package reactor

// Func is the body of an event: a short, non-blocking closure that runs
// on the event's target core.
type Func func(ev *Event)

// Event is a one-shot closure targeted at a specific core, drawn from
// the process-wide Pool. It is never freed by caller code directly -
// ownership transfers to the target core's queue on Call and back to
// the pool once Fn returns.
//
// Arg1 and Arg2 are opaque payload slots (the same shape the original
// C implementation used for arg1/arg2); Next is a one-deep continuation
// slot - never a list that gets walked beyond its head. The drain loop
// does not dispatch Next itself: an Fn that wants the continuation to
// run calls Table.Call(ev.Next), as the poller protocol handlers do.
type Event struct {
	TargetCore uint32
	Fn         Func
	Arg1       any
	Arg2       any
	Next       *Event
}

func (e *Event) reset() {
	e.TargetCore = 0
	e.Fn = nil
	e.Arg1 = nil
	e.Arg2 = nil
	e.Next = nil
}
