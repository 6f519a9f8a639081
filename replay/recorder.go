package replay

import (
	"errors"
	"time"

	"github.com/lixenwraith/ghost-arena/component"
)

// ErrRecordingSealed is returned when capturing into a finished recording
var ErrRecordingSealed = errors.New("replay: recording sealed")

// Recorder captures one live turn, frame by frame
type Recorder struct {
	rec    *Recording
	sealed bool
}

// NewRecorder starts an empty recording for a player's turn
func NewRecorder(player component.PlayerID, class component.CharacterClass, stats component.CharacterStats, round int, spawnX, spawnY int64) *Recorder {
	return &Recorder{
		rec: &Recording{
			Player:     player,
			Class:      class,
			Stats:      stats,
			Round:      round,
			SpawnX:     spawnX,
			SpawnY:     spawnY,
			DeathFrame: NoDeath,
		},
	}
}

// CaptureFrame appends the input applied this tick and the resulting actor state
func (r *Recorder) CaptureFrame(at time.Duration, in component.Input, a *component.Actor) error {
	if r.sealed {
		return ErrRecordingSealed
	}
	r.rec.Frames = append(r.rec.Frames, Frame{
		Index: len(r.rec.Frames),
		Time:  at,
		Input: in.Normalized(),
		State: StateOf(a),
	})
	return nil
}

// RecordProjectileEvent stores a spawned projectile against the frame being simulated
// Called before CaptureFrame of the same tick, so the stamp equals that frame's index
func (r *Recorder) RecordProjectileEvent(spec component.ProjectileSpec) error {
	if r.sealed {
		return ErrRecordingSealed
	}
	r.rec.Projectiles = append(r.rec.Projectiles, ProjectileEvent{
		Frame: len(r.rec.Frames),
		Spec:  spec,
	})
	return nil
}

// Finish seals the recording
// Duration is never shorter than the last frame time; a death is stamped on the last frame
func (r *Recorder) Finish(total time.Duration, died bool) *Recording {
	if r.sealed {
		return r.rec
	}
	r.sealed = true

	n := len(r.rec.Frames)
	if n > 0 {
		if last := r.rec.Frames[n-1].Time; total < last {
			total = last
		}
		if died {
			r.rec.DeathFrame = n - 1
		}
	}
	if total < 0 {
		total = 0
	}
	r.rec.Duration = total
	return r.rec
}
