package engine

import (
	"time"

	"github.com/lixenwraith/ghost-arena/parameter"
)

// Loop is the fixed-timestep driver
// Presentation frames feed elapsed time in; the step callback runs in whole TickDuration units
// and any remainder carries to the next frame
type Loop struct {
	step     func()
	tick     time.Duration
	maxTicks int

	clock     *PausableClock
	lastFrame time.Duration

	accumulator time.Duration
	ticks       uint64
	dropped     uint64
}

// NewLoop creates a loop stepping at parameter.TickDuration
// clock may be nil when the caller feeds elapsed time through Advance directly
func NewLoop(step func(), clock *PausableClock) *Loop {
	l := &Loop{
		step:     step,
		tick:     parameter.TickDuration,
		maxTicks: parameter.MaxTicksPerFrame,
		clock:    clock,
	}
	if clock != nil {
		l.lastFrame = clock.Elapsed()
	}
	return l
}

// Frame samples the clock and advances by the elapsed time since the previous frame
func (l *Loop) Frame() int {
	if l.clock == nil {
		return 0
	}
	now := l.clock.Elapsed()
	elapsed := now - l.lastFrame
	l.lastFrame = now
	return l.Advance(elapsed)
}

// Advance accumulates elapsed time and runs as many whole ticks as it covers
// At most maxTicks run per call; any backlog beyond that is discarded in whole ticks
func (l *Loop) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		l.accumulator += elapsed
	}

	ran := 0
	for l.accumulator >= l.tick {
		if ran == l.maxTicks {
			// Dropped ticks never run, so nothing is captured for them and recordings stay
			// a gapless tick sequence; only wall-clock pacing falls behind
			l.dropped += uint64(l.accumulator / l.tick)
			l.accumulator %= l.tick
			break
		}
		l.step()
		l.accumulator -= l.tick
		l.ticks++
		ran++
	}
	return ran
}

// Alpha returns the fraction of a tick left in the accumulator, for render interpolation
func (l *Loop) Alpha() float64 {
	return float64(l.accumulator) / float64(l.tick)
}

// Ticks returns the number of steps run
func (l *Loop) Ticks() uint64 { return l.ticks }

// Dropped returns the number of ticks discarded by the catch-up cap
func (l *Loop) Dropped() uint64 { return l.dropped }
