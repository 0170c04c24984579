package engine

import (
	"container/heap"
)

// Event priorities. Lower values are processed first at equal
// timestamps, so a repair completing at the same instant as a freshly
// sampled failure takes effect before it: the unit comes back Up before
// it can go Down again, and the interval is not double-counted.
const (
	PriorityRepair  = 0
	PriorityFailure = 1
)

// EventKind represents the type of simulation event
type EventKind string

const (
	// EventKindFailure represents a component transitioning Up to Down
	EventKindFailure EventKind = "failure"

	// EventKindRepair represents a repair completing, Down to Up
	EventKindRepair EventKind = "repair"
)

// Event represents a discrete state transition scheduled on the
// simulation clock. Time is in simulated hours since run start.
type Event struct {
	Time      float64
	Kind      EventKind
	Priority  int // Lower values = higher priority
	Component int // Index into the run's component table
	seq       uint64
}

// EventQueue is a priority queue of events ordered by time, then
// priority, then scheduling order. A queue belongs to exactly one run
// and is only touched by the goroutine executing that run, so no
// locking is needed.
type EventQueue struct {
	events  []*Event
	nextSeq uint64
}

// NewEventQueue creates a new event queue
func NewEventQueue() *EventQueue {
	eq := &EventQueue{
		events: make([]*Event, 0),
	}
	heap.Init(eq)
	return eq
}

// Len returns the number of events in the queue
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Less compares two events by time, priority, and scheduling order
func (eq *EventQueue) Less(i, j int) bool {
	a, b := eq.events[i], eq.events[j]
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	// If times are equal, compare by priority (lower is higher priority)
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	// Stable order for identical time and priority keeps runs
	// reproducible regardless of heap internals.
	return a.seq < b.seq
}

// Swap swaps two events in the queue
func (eq *EventQueue) Swap(i, j int) {
	eq.events[i], eq.events[j] = eq.events[j], eq.events[i]
}

// Push adds an event to the queue
func (eq *EventQueue) Push(x interface{}) {
	eq.events = append(eq.events, x.(*Event))
}

// Pop removes and returns the next event from the queue
func (eq *EventQueue) Pop() interface{} {
	old := eq.events
	n := len(old)
	event := old[n-1]
	old[n-1] = nil // avoid memory leak
	eq.events = old[0 : n-1]
	return event
}

// Schedule adds an event to the queue
func (eq *EventQueue) Schedule(event *Event) {
	eq.nextSeq++
	event.seq = eq.nextSeq
	heap.Push(eq, event)
}

// Next removes and returns the earliest event, or nil if the queue is
// empty
func (eq *EventQueue) Next() *Event {
	if eq.Len() == 0 {
		return nil
	}
	return heap.Pop(eq).(*Event)
}

// Peek returns the earliest event without removing it, or nil if the
// queue is empty
func (eq *EventQueue) Peek() *Event {
	if eq.Len() == 0 {
		return nil
	}
	return eq.events[0]
}

// Clear removes all events from the queue
func (eq *EventQueue) Clear() {
	eq.events = make([]*Event, 0)
	heap.Init(eq)
}

// IsEmpty returns true if the queue is empty
func (eq *EventQueue) IsEmpty() bool {
	return eq.Len() == 0
}
