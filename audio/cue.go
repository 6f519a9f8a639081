package audio

import (
	"github.com/gopxl/beep"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/event"
)

// Cue identifies a sound effect
type Cue int

const (
	CueCountdown Cue = iota
	CueGo
	CueShot
	CueSlash
	CueBomb
	CueExplosion
	CueHit
	CueKill
	CueVictory
	cueCount
)

var cueNames = [cueCount]string{"countdown", "go", "shot", "slash", "bomb", "explosion", "hit", "kill", "victory"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// build returns a fresh one-shot streamer for the cue
func (c Cue) build(rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueCountdown:
		return countdownSound(rate)
	case CueGo:
		return goSound(rate)
	case CueShot:
		return shotSound(rate)
	case CueSlash:
		return slashSound(rate)
	case CueBomb:
		return bombSound(rate)
	case CueExplosion:
		return explosionSound(rate)
	case CueHit:
		return hitSound(rate)
	case CueKill:
		return killSound(rate)
	case CueVictory:
		return victorySound(rate)
	default:
		return nil
	}
}

// CueFor maps a match event to its sound, false for silent events
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventCountdown:
		p, ok := ev.Payload.(*event.CountdownPayload)
		if !ok {
			return 0, false
		}
		if p.Value == 0 {
			return CueGo, true
		}
		return CueCountdown, true
	case event.EventProjectileFired:
		p, ok := ev.Payload.(*event.ProjectileFiredPayload)
		if !ok {
			return 0, false
		}
		switch p.Kind {
		case component.ProjectileShot:
			return CueShot, true
		case component.ProjectileBomb:
			return CueBomb, true
		case component.ProjectileSlash:
			return CueSlash, true
		}
	case event.EventExplosion:
		return CueExplosion, true
	case event.EventActorHit:
		p, ok := ev.Payload.(*event.ActorHitPayload)
		if !ok || p.Killed {
			// The kill cue covers it
			return 0, false
		}
		return CueHit, true
	case event.EventKill:
		return CueKill, true
	case event.EventMatchFinished:
		return CueVictory, true
	}
	return 0, false
}
