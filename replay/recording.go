package replay

import (
	"time"

	"github.com/lixenwraith/ghost-arena/component"
)

// NoDeath marks a recording whose player survived the turn
const NoDeath = -1

// ActorState is the outcome snapshot of the live actor after one tick
type ActorState struct {
	X, Y     int64
	VX, VY   int64
	Health   int64
	Fuel     int64
	Facing   int
	Alive    bool
	Grounded bool
}

// StateOf snapshots an actor
func StateOf(a *component.Actor) ActorState {
	return ActorState{
		X:        a.X,
		Y:        a.Y,
		VX:       a.VX,
		VY:       a.VY,
		Health:   a.Health,
		Fuel:     a.Fuel,
		Facing:   a.Facing,
		Alive:    a.Alive,
		Grounded: a.Grounded,
	}
}

// Frame is one captured tick
type Frame struct {
	Index int
	Time  time.Duration // Tick start, Index * TickDuration
	Input component.Input
	State ActorState
}

// ProjectileEvent is a projectile spawned by the live player, stamped with its frame
type ProjectileEvent struct {
	Frame int
	Spec  component.ProjectileSpec
}

// Recording is the input and outcome history of one finished live turn
// Immutable once returned by Recorder.Finish
type Recording struct {
	Player component.PlayerID
	Class  component.CharacterClass
	Stats  component.CharacterStats
	Round  int

	SpawnX, SpawnY int64

	Frames      []Frame
	Projectiles []ProjectileEvent

	Duration   time.Duration
	DeathFrame int // NoDeath if the player survived
}

// Len returns the number of captured frames
func (r *Recording) Len() int {
	return len(r.Frames)
}

// Died reports whether the turn ended in the player's death
func (r *Recording) Died() bool {
	return r.DeathFrame != NoDeath
}
