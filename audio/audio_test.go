package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/event"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never finished")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(48000)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(t, NewOscillator(440, 100*time.Millisecond, wave, rate))
		if n != 4800 {
			t.Errorf("Wave %d: expected 4800 samples, got %d", wave, n)
		}
		if peak > 1.0 || peak == 0 {
			t.Errorf("Wave %d: expected peak in (0, 1], got %f", wave, peak)
		}
	}
}

func TestSquareValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 64)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != -1.0 && v != 1.0 {
			t.Fatalf("Expected -1 or 1 at %d, got %f", i, v)
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant 1.0 at zero frequency
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent attack start, got %f", buf[0][0])
	}
	if buf[500][0] != 1.0 {
		t.Errorf("Expected full sustain, got %f", buf[500][0])
	}
	if buf[999][0] > 0.02 {
		t.Errorf("Expected release near zero, got %f", buf[999][0])
	}
}

func TestEveryCueFinishes(t *testing.T) {
	rate := beep.SampleRate(8000)
	for c := Cue(0); c < cueCount; c++ {
		s := c.build(rate)
		if s == nil {
			t.Fatalf("Cue %s: expected streamer", c)
		}
		if n, _ := drain(t, s); n == 0 {
			t.Errorf("Cue %s: expected samples", c)
		}
	}
	if Cue(99).build(rate) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		want Cue
		ok   bool
	}{
		{"countdown", event.GameEvent{Type: event.EventCountdown, Payload: &event.CountdownPayload{Value: 2}}, CueCountdown, true},
		{"go", event.GameEvent{Type: event.EventCountdown, Payload: &event.CountdownPayload{Value: 0}}, CueGo, true},
		{"shot", event.GameEvent{Type: event.EventProjectileFired, Payload: &event.ProjectileFiredPayload{Kind: component.ProjectileShot}}, CueShot, true},
		{"bomb", event.GameEvent{Type: event.EventProjectileFired, Payload: &event.ProjectileFiredPayload{Kind: component.ProjectileBomb}}, CueBomb, true},
		{"slash", event.GameEvent{Type: event.EventProjectileFired, Payload: &event.ProjectileFiredPayload{Kind: component.ProjectileSlash}}, CueSlash, true},
		{"explosion", event.GameEvent{Type: event.EventExplosion, Payload: &event.ExplosionPayload{}}, CueExplosion, true},
		{"hit", event.GameEvent{Type: event.EventActorHit, Payload: &event.ActorHitPayload{}}, CueHit, true},
		{"fatal hit", event.GameEvent{Type: event.EventActorHit, Payload: &event.ActorHitPayload{Killed: true}}, 0, false},
		{"kill", event.GameEvent{Type: event.EventKill, Payload: &event.KillPayload{}}, CueKill, true},
		{"victory", event.GameEvent{Type: event.EventMatchFinished, Payload: &event.MatchFinishedPayload{}}, CueVictory, true},
		{"turn end", event.GameEvent{Type: event.EventTurnEnded, Payload: &event.TurnEndedPayload{}}, 0, false},
		{"bad payload", event.GameEvent{Type: event.EventCountdown, Payload: "3"}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Expected (%s, %v), got (%s, %v)", tt.want, tt.ok, got, ok)
			}
		})
	}
}

// TestPlayerWithoutSpeaker verifies the player degrades to silence when never initialized
func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(0.5)
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without initialization: %v", r)
		}
	}()

	if p.Play(CueShot) {
		t.Error("Expected Play to drop without speaker")
	}
	p.HandleEvent(event.GameEvent{Type: event.EventKill, Payload: &event.KillPayload{}})
	if p.Played() != 0 {
		t.Errorf("Expected 0 played, got %d", p.Played())
	}
	p.Cleanup()
}

func TestPlayerMute(t *testing.T) {
	p := NewPlayer(0.5)
	if p.IsMuted() {
		t.Fatal("Expected unmuted player")
	}
	if on := p.ToggleMute(); on {
		t.Error("Expected sound off after first toggle")
	}
	if !p.IsMuted() {
		t.Error("Expected muted")
	}
	p.SetMuted(false)
	if p.IsMuted() {
		t.Error("Expected unmuted after SetMuted(false)")
	}
}

func TestPlayerRegistersWithRouter(t *testing.T) {
	r := event.NewRouter()
	r.Register(NewPlayer(1))
	for _, et := range NewPlayer(1).EventTypes() {
		if r.HandlerCount(et) != 1 {
			t.Errorf("Expected handler for %s", et)
		}
	}
}
