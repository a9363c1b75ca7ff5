// Package scheduler implements a discrete-event scheduler: a monotonic cycle
// counter paired with a min-heap of time-ordered callbacks. The CPU and any
// peripheral that needs to fire work at a future cycle consult it between
// instructions.
//
// This has no direct counterpart in the ARM decoding/execution packages this
// module otherwise follows, which step peripherals inline rather than through
// an event queue. The shape here instead follows a std::priority_queue of
// (triggerCycle, callback) pairs ordered smallest-trigger-first, tie-broken by
// insertion order. Go's container/heap is the standard way to express that
// same structure, and no third-party priority-queue library fits this scope
// better, so the heap package is used directly rather than hand-rolling one.
package scheduler

import (
	"container/heap"

	"github.com/jetsetilly/armthumb/logger"
)

// Callback is invoked when a scheduled event fires. It may schedule further
// events on the same Scheduler, including at the current cycle.
type Callback func()

// event is a single scheduled callback. seq breaks ties between events with
// equal triggerCycle in insertion order: the C++ reference's
// std::priority_queue<std::greater<>> does not actually guarantee that, but
// stable FIFO ordering on ties is required here, so an explicit monotonic
// sequence number is carried alongside the trigger cycle.
type event struct {
	triggerCycle uint64
	seq          uint64
	callback     Callback
}

// eventHeap implements container/heap.Interface, ordering by triggerCycle
// and then by seq.
type eventHeap []event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].triggerCycle != h[j].triggerCycle {
		return h[i].triggerCycle < h[j].triggerCycle
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Scheduler is a monotonic cycle counter plus a priority queue of time-ordered
// callbacks. The zero value is ready to use.
type Scheduler struct {
	currentCycle uint64
	nextSeq      uint64
	queue        eventHeap
}

// NewScheduler returns a ready-to-use Scheduler. Equivalent to the zero value;
// provided for symmetry with the rest of the package's constructors.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Reset empties the queue and zeroes the cycle counter.
func (s *Scheduler) Reset() {
	s.currentCycle = 0
	s.nextSeq = 0
	s.queue = s.queue[:0]
}

// CurrentCycle returns the scheduler's cycle counter.
func (s *Scheduler) CurrentCycle() uint64 {
	return s.currentCycle
}

// Schedule enqueues callback to fire at currentCycle+cyclesFromNow. A
// negative delta is a programming error: it is recorded in the diagnostic
// log before Schedule panics, so a caller draining logger.Tail after a crash
// recovery can see which delta misbehaved, not just that one did.
func (s *Scheduler) Schedule(cyclesFromNow int32, callback Callback) {
	if cyclesFromNow < 0 {
		logger.Logf("scheduler", "negative delta %d passed to Schedule", cyclesFromNow)
		panic("scheduler: negative delta")
	}
	if callback == nil {
		panic("scheduler: nil callback")
	}
	e := event{
		triggerCycle: s.currentCycle + uint64(cyclesFromNow),
		seq:          s.nextSeq,
		callback:     callback,
	}
	s.nextSeq++
	heap.Push(&s.queue, e)
}

// RunUntil drains every event whose trigger cycle is at most target, advancing
// currentCycle to each event's trigger cycle before invoking its callback.
// Once the queue is empty or its next event exceeds target, currentCycle is
// advanced to target (never backwards) and RunUntil returns.
func (s *Scheduler) RunUntil(target uint64) {
	for len(s.queue) > 0 && s.queue[0].triggerCycle <= target {
		e := heap.Pop(&s.queue).(event)
		s.currentCycle = e.triggerCycle
		e.callback()
	}
	if s.currentCycle < target {
		s.currentCycle = target
	}
}

// Pending returns the number of events still queued. Exposed for tests and
// diagnostics only; production code has no need to inspect queue depth.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}
