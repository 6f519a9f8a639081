package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 5*time.Millisecond {
		t.Errorf("Expected at least 5ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if now := mock.Now(); !now.Equal(start) {
		t.Errorf("Expected initial time %v, got %v", start, now)
	}

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	if expected := start.Add(90 * time.Minute); !mock.Now().Equal(expected) {
		t.Errorf("Expected %v after advances, got %v", expected, mock.Now())
	}

	later := start.Add(24 * time.Hour)
	mock.SetTime(later)
	if !mock.Now().Equal(later) {
		t.Errorf("Expected %v after SetTime, got %v", later, mock.Now())
	}
}

func TestPausableClockExcludesPause(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Fatalf("Expected 2s elapsed, got %v", got)
	}

	clock.Pause()
	mock.Advance(5 * time.Second)
	if got := clock.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected clock frozen at 2s while paused, got %v", got)
	}
	if !clock.IsPaused() {
		t.Error("Expected paused state")
	}

	clock.Resume()
	mock.Advance(time.Second)
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed after resume, got %v", got)
	}

	if !clock.Toggle() {
		t.Error("Expected Toggle to pause")
	}
	if clock.Toggle() {
		t.Error("Expected Toggle to resume")
	}
}
