package parameter

import "time"

// Fixed Timestep
// TickDuration is the single Δt shared by live simulation and every ghost replay
const (
	// TickRate is the number of simulation ticks per second
	TickRate = 60

	// TickDuration is the fixed simulation step
	TickDuration = time.Second / TickRate

	// MaxTicksPerFrame caps catch-up work after a long stall (debugger, suspended terminal)
	MaxTicksPerFrame = 8

	// FrameInterval is the presentation frame pacing used by frontends (~60 FPS)
	FrameInterval = 16 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 512

	// EventBufferMask is the bitmask for fast modulo operations (512 - 1)
	EventBufferMask = EventQueueSize - 1
)
