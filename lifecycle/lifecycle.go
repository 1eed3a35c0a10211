// File: lifecycle/lifecycle.go
// Author: coreactor contributors
// License: Apache-2.0
//
// Runtime is a single value in place of raw global state: New builds
// it uninitialized, Init performs init, and every process-wide operation (event
// dispatch, poller register/unregister/migrate, core count/mask
// introspection) is a method on it. Grounded structurally on the
// teacher's server.HioloadWS facade (server/hioload.go): a struct
// wrapping the subsystems, a Config, and New/Start/Stop/Shutdown-shaped
// methods - here renamed Init/Start/Stop/Fini.

package lifecycle

import (
	"log"
	"strconv"
	"sync/atomic"

	"github.com/coreactor/coreactor/api"
	"github.com/coreactor/coreactor/control"
	"github.com/coreactor/coreactor/platform"
	"github.com/coreactor/coreactor/reactor"
)

// Runtime owns the event pool, the reactor table, the mask, and the
// global state word. Exactly one Runtime corresponds to one init/fini
// cycle.
type Runtime struct {
	cfg      *Config
	platform platform.Platform

	state atomic.Uint32

	mask       uint64
	masterCore uint32

	pool  *reactor.Pool
	table *reactor.Table

	recorder *control.Recorder
	ctrl     *control.ControlAdapter
	debug    *control.DebugAdapter
}

// New constructs an uninitialized Runtime bound to p. Call Init before
// any other method.
func New(p platform.Platform, opts ...Option) *Runtime {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	recorder := control.NewRecorder(0)
	r := &Runtime{
		cfg:      cfg,
		platform: p,
		recorder: recorder,
		ctrl:     control.NewControlAdapter(),
		debug:    control.NewDebugAdapter(recorder),
	}
	r.debug.RegisterProbe("lifecycle.state", func() any { return stateName(r.state.Load()) })
	r.debug.RegisterProbe("lifecycle.core_mask", func() any { return r.mask })
	r.debug.RegisterProbe("lifecycle.core_count", func() any { return r.GetCoreCount() })
	return r
}

// Recorder exposes the diagnostics ring for Debug.RecentEvents().
func (r *Runtime) Recorder() *control.Recorder { return r.recorder }

// Control returns the api.Control surface for dynamic configuration
// and metrics.
func (r *Runtime) Control() api.Control { return r.ctrl }

// Debug returns the api.Debug surface for probe-based introspection.
func (r *Runtime) Debug() api.Debug { return r.debug }

// Init parses mask, validates the master-core bit survives masking,
// and constructs one reactor per set bit plus the shared event pool.
// Requires state == INVALID. On any configuration error, state is
// left untouched and no reactor is constructed: no side effects
// persist on a configuration error.
func (r *Runtime) Init(maskStr string) error {
	if r.state.Load() != StateInvalid {
		return api.NewError(api.ErrCodeIllegalState, "init called outside INVALID state").
			WithContext("state", stateName(r.state.Load()))
	}

	mask, err := ParseMask(maskStr, r.platform)
	if err != nil {
		return err
	}

	master := r.platform.MasterCore()
	if mask&(uint64(1)<<master) == 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "master core bit cleared by mask").
			WithContext("mask", mask).WithContext("master_core", master)
	}

	fatal := r.cfg.FatalHandler
	if fatal == nil {
		fatal = reactor.FatalAbort
	}
	fatal = chainFatal(fatal, r.recordingFatalHandler)

	r.pool = reactor.NewPool(r.cfg.EventPoolCapacity, fatal)
	r.table = reactor.NewTable(r.pool)

	for c := uint32(0); c < platform.MaxCores; c++ {
		if mask&(uint64(1)<<c) != 0 {
			reactor.NewReactor(r.table, c, r.cfg.EventQueueCapacity, r.cfg.PollerRingCapacity)
		}
	}

	r.mask = mask
	r.masterCore = master
	r.state.Store(StateInitialized)
	r.recorder.Record("init: mask=0x%x core_count=%d master=%d socket_mask=0x%x",
		mask, coreCount(mask), master, r.SocketMask())
	r.ctrl.SetMetric("core_count", coreCount(mask))
	r.ctrl.SetMetric("core_mask", mask)
	r.ctrl.SetMetric("event_pool_capacity", r.pool.Cap())
	return nil
}

// recordingFatalHandler wraps the default fatal behavior with a
// diagnostics record before it aborts the process.
func (r *Runtime) recordingFatalHandler(reason string, context map[string]any) {
	r.recorder.Record("FATAL: %s %v", reason, context)
	log.Printf("lifecycle: fatal: %s %v", reason, context)
}

func chainFatal(first, second reactor.FatalHandler) reactor.FatalHandler {
	return func(reason string, context map[string]any) {
		second(reason, context)
		first(reason, context)
	}
}

// Start requires state == INITIALIZED and the caller pinned to the
// master core. It launches every non-master enabled core's reactor
// loop on its own pinned worker, then runs the master's reactor loop
// inline on the calling goroutine. Once every worker (and the inline
// master loop) has returned, state becomes SHUTDOWN.
func (r *Runtime) Start() error {
	if r.state.Load() != StateInitialized {
		return api.NewError(api.ErrCodeIllegalState, "start called outside INITIALIZED state").
			WithContext("state", stateName(r.state.Load()))
	}
	current, err := r.platform.CurrentCore()
	if err != nil {
		return api.NewError(api.ErrCodeInvalidArgument, "start: cannot determine current core").
			WithContext("cause", err.Error())
	}
	if current != r.masterCore {
		return api.NewError(api.ErrCodeInvalidArgument, "start must be called from the master core").
			WithContext("current_core", current).WithContext("master_core", r.masterCore)
	}

	r.state.Store(StateRunning)
	r.recorder.Record("start: state=RUNNING master=%d", r.masterCore)

	r.platform.ForEachEnabledSlave(func(core uint32) {
		rc := r.table.Get(core)
		r.platform.LaunchOnCore(core, func() {
			rc.Run(r.cfg.Timers, r.state.Load)
		})
	})

	if err := r.platform.SetThreadName(r.cfg.ThreadNamePrefix + " " + strconv.Itoa(int(r.masterCore))); err != nil {
		log.Printf("lifecycle: name master core %d: %v", r.masterCore, err)
	}
	if err := r.platform.Pin(r.masterCore); err != nil {
		log.Printf("lifecycle: pin master core %d: %v", r.masterCore, err)
	}
	master := r.table.Get(r.masterCore)
	master.Run(r.cfg.Timers, r.state.Load)

	r.platform.WaitAllCores()
	r.state.Store(StateShutdown)
	r.recorder.Record("start: all reactors exited, state=SHUTDOWN")
	return nil
}

// Stop requests every reactor loop stop at its next lifecycle check.
// Callable from any core at any time while state == RUNNING; a call
// while not RUNNING is a silent no-op.
func (r *Runtime) Stop() {
	if r.state.CompareAndSwap(StateRunning, StateExiting) {
		r.recorder.Record("stop: state=EXITING")
	}
}

// Fini releases the rings and event pool. Permitted only in SHUTDOWN;
// the state stays SHUTDOWN afterwards.
func (r *Runtime) Fini() error {
	if r.state.Load() != StateShutdown {
		return api.NewError(api.ErrCodeIllegalState, "fini called outside SHUTDOWN state").
			WithContext("state", stateName(r.state.Load()))
	}
	r.table = nil
	r.pool = nil
	r.mask = 0
	r.recorder.Record("fini: released rings and event pool, state=SHUTDOWN")
	return nil
}

// GetCoreCount returns the number of cores enabled by the current
// mask.
func (r *Runtime) GetCoreCount() int { return coreCount(r.mask) }

// GetCoreMask returns the current effective core mask.
func (r *Runtime) GetCoreMask() uint64 { return r.mask }

// State returns the current lifecycle state word.
func (r *Runtime) State() uint32 { return r.state.Load() }

// SocketMask returns the set of NUMA sockets touched by the current
// mask, an operator-visible diagnostic carried forward from
// spdk_reactor_get_socket_mask (original_source/lib/event/reactor.c).
func (r *Runtime) SocketMask() uint64 {
	var sockets uint64
	for c := uint32(0); c < platform.MaxCores; c++ {
		if r.mask&(uint64(1)<<c) == 0 {
			continue
		}
		node := r.platform.NUMANodeOf(c)
		if node >= 0 && node < 64 {
			sockets |= uint64(1) << uint(node)
		}
	}
	return sockets
}

// EventAllocate draws and fills an event targeting core.
func (r *Runtime) EventAllocate(core uint32, fn reactor.Func, arg1, arg2 any, next *reactor.Event) *reactor.Event {
	return r.table.Allocate(core, fn, arg1, arg2, next)
}

// EventCall enqueues ev on its target core, the public surface for
// event_call.
func (r *Runtime) EventCall(ev *reactor.Event) {
	r.table.Call(ev)
}

// EventQueueRunAll runs every currently queued event and advances
// every currently registered poller exactly once on core, the public
// surface for event_queue_run_all.
func (r *Runtime) EventQueueRunAll(core uint32) {
	r.table.Get(core).RunAllQueued()
}

// PollerRegister is the public surface for poller_register.
func (r *Runtime) PollerRegister(core uint32, p *reactor.Poller, complete *reactor.Event) {
	r.table.RegisterPoller(core, p, complete)
}

// PollerUnregister is the public surface for poller_unregister.
func (r *Runtime) PollerUnregister(p *reactor.Poller, complete *reactor.Event) {
	r.table.UnregisterPoller(p.OwningCore(), p, complete)
}

// PollerMigrate is the public surface for poller_migrate.
func (r *Runtime) PollerMigrate(p *reactor.Poller, newCore uint32, complete *reactor.Event) {
	r.table.MigratePoller(newCore, p, complete)
}

// Table exposes the underlying reactor table for tests and advanced
// callers that need direct reactor access.
func (r *Runtime) Table() *reactor.Table { return r.table }
