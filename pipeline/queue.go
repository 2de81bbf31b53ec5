// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"sync"

	"github.com/ik5/audpipe/audio"
)

// Packet is the unit of cross-thread hand-off between pipeline threads: one
// frame plus its position in the stream.
type Packet struct {
	Seq  uint64
	Data audio.Frame
}

// Queue is a blocking FIFO for moving packets from producer goroutines to a
// consumer. Write never blocks and wakes at most one waiting reader; Read
// blocks until a write has been signalled.
//
// Writing a nil packet enqueues nothing but still signals, so Read can
// return nil. Callers must agree on what a nil packet means; the Pump uses
// it as its end-of-stream marker.
//
// This queue is the pipeline's only cross-thread synchronization point.
// Single-owner components such as the Profiler must be handed between
// goroutines through it, never shared.
type Queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	packets []*Packet
	signals int
}

func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// Write appends the packet and signals one reader. A nil packet is a no-op
// that still signals.
func (q *Queue) Write(p *Packet) {
	q.mu.Lock()
	if p != nil {
		q.packets = append(q.packets, p)
	}
	q.signals++
	q.mu.Unlock()

	q.cond.Signal()
}

// Read blocks until a write has occurred, then removes and returns the
// oldest packet. It returns nil when the matching write was nil.
func (q *Queue) Read() *Packet {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.signals == 0 {
		q.cond.Wait()
	}
	q.signals--

	if len(q.packets) == 0 {
		return nil
	}

	p := q.packets[0]
	q.packets[0] = nil // release for GC
	q.packets = q.packets[1:]

	return p
}

// Len returns the number of packets currently queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.packets)
}
