package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/ghost-arena/parameter"
)

// ScheduledEvent is a single-shot callback armed to fire on a specific tick
type ScheduledEvent struct {
	ID      uint64
	ArmedAt uint64
	Name    string
	fn      func()
}

// Scheduler runs deferred callbacks on the simulation tick, never on wall-clock timers
// Single-threaded: Schedule and Tick must be called from the loop goroutine
type Scheduler struct {
	now     uint64
	nextID  uint64
	pending []*ScheduledEvent
}

// NewScheduler creates an empty scheduler at tick 0
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current tick
func (s *Scheduler) Now() uint64 {
	return s.now
}

// TicksFor converts a delay to a whole number of ticks, rounded to nearest
func TicksFor(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64((d + parameter.TickDuration/2) / parameter.TickDuration)
}

// Schedule arms fn to fire on tick at, a tick already reached fires on the next Tick
func (s *Scheduler) Schedule(at uint64, name string, fn func()) uint64 {
	s.nextID++
	s.pending = append(s.pending, &ScheduledEvent{ID: s.nextID, ArmedAt: at, Name: name, fn: fn})
	return s.nextID
}

// After arms fn to fire delay after the current tick
func (s *Scheduler) After(delay time.Duration, name string, fn func()) uint64 {
	return s.Schedule(s.now+TicksFor(delay), name, fn)
}

// Tick advances one tick and fires every due event in (ArmedAt, ID) order
// Events scheduled by a callback for a tick already due fire in the same call
func (s *Scheduler) Tick() int {
	s.now++
	fired := 0
	for {
		due := s.takeDue()
		if len(due) == 0 {
			return fired
		}
		for _, ev := range due {
			ev.fn()
			fired++
		}
	}
}

// takeDue removes and returns due events sorted by arm tick then id
func (s *Scheduler) takeDue() []*ScheduledEvent {
	var due []*ScheduledEvent
	kept := s.pending[:0]
	for _, ev := range s.pending {
		if ev.ArmedAt <= s.now {
			due = append(due, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	for i := len(kept); i < len(s.pending); i++ {
		s.pending[i] = nil
	}
	s.pending = kept
	sort.Slice(due, func(i, j int) bool {
		if due[i].ArmedAt != due[j].ArmedAt {
			return due[i].ArmedAt < due[j].ArmedAt
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// Cancel removes a pending event, false if it already fired or never existed
func (s *Scheduler) Cancel(id uint64) bool {
	for i, ev := range s.pending {
		if ev.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every pending event
func (s *Scheduler) Clear() {
	s.pending = nil
}

// Pending returns the number of armed events
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Next returns the earliest armed event
func (s *Scheduler) Next() (ScheduledEvent, bool) {
	if len(s.pending) == 0 {
		return ScheduledEvent{}, false
	}
	best := s.pending[0]
	for _, ev := range s.pending[1:] {
		if ev.ArmedAt < best.ArmedAt || (ev.ArmedAt == best.ArmedAt && ev.ID < best.ID) {
			best = ev
		}
	}
	return *best, true
}
