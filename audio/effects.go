package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweep    float64 // Hz per second, negative falls
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch moves linearly by sweep Hz per second
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = float64(o.rng.Intn(2001)-1000) / 1000
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		if freq < 0 {
			freq = 0
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume, 0 is silent since Log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an enveloped oscillator
func tone(freq, sweep float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	release := parameter.CueRelease
	if release > d/2 {
		release = d / 2
	}
	return NewEnvelope(NewSweep(freq, sweep, d, wave, rate), d, parameter.CueAttack, release, rate)
}

// Cue builders

func countdownSound(rate beep.SampleRate) beep.Streamer {
	return tone(660, 0, parameter.CountdownToneDuration, WaveSquare, rate)
}

func goSound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(tone(880, 0, parameter.GoToneDuration, WaveSquare, rate), 0.6),
		newVolume(tone(1320, 0, parameter.GoToneDuration, WaveSine, rate), 0.4),
	)
}

func shotSound(rate beep.SampleRate) beep.Streamer {
	return tone(1400, -6000, parameter.ShotSoundDuration, WaveSaw, rate)
}

func slashSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(0, 0, parameter.SlashSoundDuration, WaveNoise, rate), 0.5)
}

func bombSound(rate beep.SampleRate) beep.Streamer {
	return tone(220, 600, parameter.BombSoundDuration, WaveSine, rate)
}

func explosionSound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(tone(0, 0, parameter.ExplosionDuration, WaveNoise, rate), 0.7),
		newVolume(tone(90, -120, parameter.ExplosionDuration, WaveSine, rate), 0.5),
	)
}

func hitSound(rate beep.SampleRate) beep.Streamer {
	return tone(180, 0, parameter.HitSoundDuration, WaveSquare, rate)
}

func killSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(987.77, 0, parameter.KillNoteDuration, WaveSquare, rate),
		tone(1318.51, 0, parameter.KillNoteDuration, WaveSquare, rate),
	)
}

func victorySound(rate beep.SampleRate) beep.Streamer {
	d := parameter.VictoryNoteDuration
	return beep.Seq(
		tone(523.25, 0, d, WaveSquare, rate),
		tone(659.25, 0, d, WaveSquare, rate),
		tone(783.99, 0, d, WaveSquare, rate),
		tone(1046.50, 0, 2*d, WaveSine, rate),
	)
}
