package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ghost-arena/event"
	"github.com/lixenwraith/ghost-arena/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player mixes one-shot cues onto the speaker
// Every method is safe to call before Initialize or after a failed one, sounds are then dropped
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64

	muted  atomic.Bool
	played atomic.Int64
}

// NewPlayer creates a player with a linear master volume in [0, 1]
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker, failure leaves the player silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sounds
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker close, an empty mixer keeps the device quiet
	p.initialized = false
}

// Play queues a cue, returns false when dropped
func (p *Player) Play(c Cue) bool {
	if p.muted.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}

	s := c.build(sampleRate)
	if s == nil {
		return false
	}

	speaker.Lock()
	p.mixer.Add(newVolume(s, p.volume))
	speaker.Unlock()

	p.played.Add(1)
	return true
}

// ToggleMute flips mute, returns true when sound is now on
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// SetMuted sets the mute state
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
}

// IsMuted returns the mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// Played returns the number of cues handed to the mixer
func (p *Player) Played() int64 {
	return p.played.Load()
}

// HandleEvent plays the cue mapped to ev
func (p *Player) HandleEvent(ev event.GameEvent) {
	if c, ok := CueFor(ev); ok {
		p.Play(c)
	}
}

// EventTypes lists the events that carry a cue
func (p *Player) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCountdown,
		event.EventProjectileFired,
		event.EventExplosion,
		event.EventActorHit,
		event.EventKill,
		event.EventMatchFinished,
	}
}
