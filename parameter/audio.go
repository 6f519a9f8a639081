package parameter

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default linear master volume
	AudioMasterVolume = 0.6
)

// Cue Shapes
const (
	CountdownToneDuration = 120 * time.Millisecond
	GoToneDuration        = 320 * time.Millisecond
	ShotSoundDuration     = 90 * time.Millisecond
	SlashSoundDuration    = 110 * time.Millisecond
	BombSoundDuration     = 160 * time.Millisecond
	ExplosionDuration     = 450 * time.Millisecond
	HitSoundDuration      = 70 * time.Millisecond
	KillNoteDuration      = 140 * time.Millisecond
	VictoryNoteDuration   = 220 * time.Millisecond

	CueAttack  = 5 * time.Millisecond
	CueRelease = 60 * time.Millisecond
)
