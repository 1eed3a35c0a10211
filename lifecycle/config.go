// File: lifecycle/config.go
// Author: coreactor contributors
// License: Apache-2.0
//
// Config and the functional-options pair are grounded on
// server.Config/DefaultConfig and server.ServerOption
// (server/hioload.go, server/options.go): a plain struct with a
// default constructor, customized by With* functions applied in
// order.

package lifecycle

import "github.com/coreactor/coreactor/reactor"

// Config holds the tunables Init needs beyond the mask itself.
type Config struct {
	EventPoolCapacity    int
	EventQueueCapacity   int
	PollerRingCapacity   int
	ThreadNamePrefix     string
	Timers               reactor.TimerHook
	FatalHandler         reactor.FatalHandler
}

// DefaultConfig returns the package's target sizing: a 262,144-record
// event pool, 65,536-slot per-core queues, and the package's default
// poller-ring capacity.
func DefaultConfig() *Config {
	return &Config{
		EventPoolCapacity:  reactor.DefaultPoolCapacity,
		EventQueueCapacity: reactor.DefaultQueueCapacity,
		PollerRingCapacity: reactor.DefaultPollerRingCapacity,
		ThreadNamePrefix:   "reactor",
	}
}

// Option customizes a Config before Init consumes it.
type Option func(*Config)

// WithEventPoolCapacity overrides the event pool's fixed capacity.
func WithEventPoolCapacity(n int) Option {
	return func(c *Config) { c.EventPoolCapacity = n }
}

// WithEventQueueCapacity overrides each reactor's event queue capacity.
func WithEventQueueCapacity(n int) Option {
	return func(c *Config) { c.EventQueueCapacity = n }
}

// WithPollerRingCapacity overrides each reactor's active-poller ring
// capacity.
func WithPollerRingCapacity(n int) Option {
	return func(c *Config) { c.PollerRingCapacity = n }
}

// WithTimerHook installs the external expired-timer management hook.
// A nil hook (the default) means no timer facility is wired up.
func WithTimerHook(hook reactor.TimerHook) Option {
	return func(c *Config) { c.Timers = hook }
}

// WithFatalHandler overrides the invariant-violation handler; the
// default aborts the process.
func WithFatalHandler(h reactor.FatalHandler) Option {
	return func(c *Config) { c.FatalHandler = h }
}
