// File: reactor/doc.go
// Author: coreactor contributors
// License: Apache-2.0
//
// Package reactor implements the per-core cooperative run loop: a
// bounded event pool, a per-core multi-producer/single-consumer event
// queue, a per-core single-producer/single-consumer active-poller
// ring, the reactor loop itself, and the poller lifecycle protocol
// built on top of the first three.
//
// None of this package's types are safe to share across goroutines
// indiscriminately: active-poller rings are touched only by the
// goroutine running the owning reactor's loop; event queues accept
// enqueue from any goroutine but dequeue only from the owning
// reactor's loop goroutine.
package reactor
