package event

import (
	"github.com/lixenwraith/ghost-arena/parameter"
)

// EventQueue is a fixed-capacity ring of pending game events
// Push and Consume belong to the goroutine that ticks the match; the queue holds no locks
// Overflow: the oldest unread event is overwritten and counted as dropped
type EventQueue struct {
	events  [parameter.EventQueueSize]GameEvent
	head    uint64 // Next unread
	tail    uint64 // Next write
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest unread one when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
		eq.dropped++
	}
}

// Consume drains every pending event in push order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		idx := i & parameter.EventBufferMask
		out = append(out, eq.events[idx])
		eq.events[idx] = GameEvent{} // Release payload
	}
	eq.head = eq.tail
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns the number of events overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
