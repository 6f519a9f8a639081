package engine

import (
	"sync"
	"time"
)

// PausableClock measures match time on top of a TimeProvider, excluding paused spans
type PausableClock struct {
	mu sync.Mutex

	provider TimeProvider
	start    time.Time

	paused     bool
	pauseStart time.Time
	pausedFor  time.Duration
}

// NewPausableClock creates a running clock starting at zero
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{provider: provider, start: provider.Now()}
}

// Elapsed returns match time since creation, frozen while paused
func (c *PausableClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	if c.paused {
		now = c.pauseStart
	}
	return now.Sub(c.start) - c.pausedFor
}

// Pause freezes the clock, no-op when already paused
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		c.paused = true
		c.pauseStart = c.provider.Now()
	}
}

// Resume restarts the clock, the paused span is excluded from Elapsed
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		c.pausedFor += c.provider.Now().Sub(c.pauseStart)
		c.paused = false
	}
}

// Toggle flips the pause state and returns the new state
func (c *PausableClock) Toggle() bool {
	c.mu.Lock()
	paused := c.paused
	c.mu.Unlock()
	if paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return !paused
}

// IsPaused returns current pause state
func (c *PausableClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
