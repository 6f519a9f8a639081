package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/ghost-arena/parameter"
)

func TestTicksFor(t *testing.T) {
	tests := []struct {
		delay    time.Duration
		expected uint64
	}{
		{0, 0},
		{-time.Second, 0},
		{parameter.TickDuration, 1},
		{time.Second, 60},
		{1500 * time.Millisecond, 90},
		{3 * time.Second, 180},
	}
	for _, tt := range tests {
		if got := TicksFor(tt.delay); got != tt.expected {
			t.Errorf("TicksFor(%v): expected %d, got %d", tt.delay, tt.expected, got)
		}
	}
}

func TestSchedulerFiresOnArmedTick(t *testing.T) {
	s := NewScheduler()
	var fired []string

	s.Schedule(3, "c", func() { fired = append(fired, "c") })
	s.Schedule(2, "b", func() { fired = append(fired, "b") })
	s.Schedule(2, "b2", func() { fired = append(fired, "b2") })

	s.Tick() // 1
	if len(fired) != 0 {
		t.Fatalf("Expected nothing on tick 1, got %v", fired)
	}
	s.Tick() // 2
	if len(fired) != 2 || fired[0] != "b" || fired[1] != "b2" {
		t.Fatalf("Expected [b b2] on tick 2, got %v", fired)
	}
	s.Tick() // 3
	if len(fired) != 3 || fired[2] != "c" {
		t.Fatalf("Expected c on tick 3, got %v", fired)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected empty scheduler, got %d pending", s.Pending())
	}
}

func TestSchedulerChainedAfter(t *testing.T) {
	s := NewScheduler()
	var at []uint64

	s.After(time.Second, "first", func() {
		at = append(at, s.Now())
		s.After(0, "immediate", func() { at = append(at, s.Now()) })
		s.After(time.Second, "second", func() { at = append(at, s.Now()) })
	})

	for i := 0; i < 150; i++ {
		s.Tick()
	}
	if len(at) != 3 {
		t.Fatalf("Expected 3 callbacks, got %v", at)
	}
	if at[0] != 60 || at[1] != 60 || at[2] != 120 {
		t.Errorf("Expected ticks [60 60 120], got %v", at)
	}
}

func TestSchedulerCancelAndClear(t *testing.T) {
	s := NewScheduler()
	fired := 0
	id := s.Schedule(1, "x", func() { fired++ })
	s.Schedule(1, "y", func() { fired++ })

	if !s.Cancel(id) {
		t.Error("Expected cancel to succeed")
	}
	if s.Cancel(id) {
		t.Error("Expected second cancel to fail")
	}
	next, ok := s.Next()
	if !ok || next.Name != "y" {
		t.Errorf("Expected y to be next, got %+v", next)
	}

	s.Clear()
	s.Tick()
	if fired != 0 {
		t.Errorf("Expected cleared events not to fire, got %d", fired)
	}
	if _, ok := s.Next(); ok {
		t.Error("Expected no next event")
	}
}
