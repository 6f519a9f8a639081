package event

import (
	"time"

	"github.com/lixenwraith/ghost-arena/component"
)

// CharacterChoicesPayload lists the classes the active player may still pick
type CharacterChoicesPayload struct {
	Player  component.PlayerID
	Round   int
	Options []component.CharacterClass
}

// CountdownPayload carries one countdown step, Value 0 means GO
type CountdownPayload struct {
	Value int
}

// TurnStartedPayload describes the turn entering live play
type TurnStartedPayload struct {
	Player   component.PlayerID
	Round    int
	Class    component.CharacterClass
	Ghosts   int
	Duration time.Duration
}

// ProjectileFiredPayload describes a spawned projectile
type ProjectileFiredPayload struct {
	Owner component.PlayerID
	Kind  component.ProjectileKind
	X, Y  int64
	Ghost bool
}

// ExplosionPayload describes a bomb detonation
type ExplosionPayload struct {
	Owner  component.PlayerID
	X, Y   int64
	Radius int64
}

// ActorHitPayload describes damage dealt
type ActorHitPayload struct {
	Attacker     component.PlayerID
	Victim       component.ActorID
	VictimPlayer component.PlayerID
	VictimKind   component.ActorKind
	Kind         component.ProjectileKind
	Amount       int64
	Killed       bool
}

// KillPayload describes a scoring kill and the attacker's new score
type KillPayload struct {
	Attacker     component.PlayerID
	VictimPlayer component.PlayerID
	VictimKind   component.ActorKind
	Score        int
}

// TurnEndedPayload describes a sealed turn
type TurnEndedPayload struct {
	Player      component.PlayerID
	Round       int
	Class       component.CharacterClass
	Died        bool
	FinalHealth int64
	Frames      int
}

// RoundAdvancedPayload announces the new round
type RoundAdvancedPayload struct {
	Round int
}

// MatchFinishedPayload is the victory summary
type MatchFinishedPayload struct {
	MatchID     string
	Winner      component.PlayerID // PlayerNone on draw
	Draw        bool
	Reason      string
	Scores      [2]int
	FinalHealth [2]int64
}
