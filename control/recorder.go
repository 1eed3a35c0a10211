// control/recorder.go
// Author: coreactor contributors
//
// Recorder keeps a bounded trail of recent lifecycle transitions and
// capacity faults for Debug.RecentEvents(). It is backed by
// github.com/eapache/queue, an off-hot-path diagnostics ring never
// touched by the reactor loop itself.

package control

import (
	"fmt"
	"sync"
	"time"

	"github.com/eapache/queue"
)

// DefaultRecorderCapacity bounds how many recent events Recorder keeps
// before evicting the oldest.
const DefaultRecorderCapacity = 512

// Recorder is a thread-safe bounded FIFO of human-readable event
// strings, backed by queue.Queue.
type Recorder struct {
	mu       sync.Mutex
	q        *queue.Queue
	capacity int
}

// NewRecorder creates a recorder holding at most capacity events (0
// selects DefaultRecorderCapacity).
func NewRecorder(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultRecorderCapacity
	}
	return &Recorder{q: queue.New(), capacity: capacity}
}

// Record appends a formatted event, evicting the oldest entry first if
// the recorder is at capacity.
func (r *Recorder) Record(format string, args ...any) {
	line := fmt.Sprintf("%s %s", time.Now().UTC().Format(time.RFC3339Nano), fmt.Sprintf(format, args...))
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.q.Length() >= r.capacity {
		r.q.Remove()
	}
	r.q.Add(line)
}

// RecentEvents returns a snapshot of recorded events, oldest first.
func (r *Recorder) RecentEvents() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, r.q.Length())
	for i := range out {
		out[i] = r.q.Get(i).(string)
	}
	return out
}
