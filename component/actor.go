package component

import (
	"time"

	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// PlayerID identifies a competitor, PlayerNone marks environmental or unattributed sources
type PlayerID uint8

const (
	PlayerNone PlayerID = 0
	Player1    PlayerID = 1
	Player2    PlayerID = 2
)

// ActorID is a stable per-turn actor index, used as the key of hit tracking
type ActorID int

// ActorKind selects the driver of an actor
type ActorKind uint8

const (
	ActorLive  ActorKind = iota // Driven by the input source
	ActorGhost                  // Driven by a recording
)

// Actor is the live player or a ghost, both share the same physical shape
type Actor struct {
	ID     ActorID
	Kind   ActorKind
	Player PlayerID
	Class  CharacterClass
	Stats  CharacterStats

	// Position is the hitbox center, velocity in units/s (Q32.32)
	X, Y   int64
	VX, VY int64

	HalfW, HalfH int64

	Health   int64 // [0, Stats.MaxHealth]
	Fuel     int64 // [0, Stats.MaxFuel]
	Facing   int   // -1 or +1
	Cooldown time.Duration

	Alive    bool
	Grounded bool
}

// NewActor creates a full-health actor centered at (x, y)
func NewActor(id ActorID, kind ActorKind, player PlayerID, class CharacterClass, stats CharacterStats, x, y int64) *Actor {
	return &Actor{
		ID:     id,
		Kind:   kind,
		Player: player,
		Class:  class,
		Stats:  stats,
		X:      x,
		Y:      y,
		HalfW:  parameter.ActorHalfWidth,
		HalfH:  parameter.ActorHalfHeight,
		Health: stats.MaxHealth,
		Fuel:   stats.MaxFuel,
		Facing: 1,
		Alive:  true,
	}
}

// Bounds returns the actor hitbox
func (a *Actor) Bounds() vmath.Rect {
	return vmath.RectFromCenter(a.X, a.Y, a.HalfW, a.HalfH)
}

// ClampVitals keeps health, fuel and cooldown inside their bounds
func (a *Actor) ClampVitals() {
	a.Health = vmath.Clamp(a.Health, 0, a.Stats.MaxHealth)
	a.Fuel = vmath.Clamp(a.Fuel, 0, a.Stats.MaxFuel)
	if a.Cooldown < 0 {
		a.Cooldown = 0
	}
}

// CanFire reports whether the attack cooldown has elapsed
func (a *Actor) CanFire() bool {
	return a.Alive && a.Cooldown <= 0
}

// Opposes reports whether damage from player p may hit this actor
func (a *Actor) Opposes(p PlayerID) bool {
	return p != PlayerNone && a.Player != p
}
