package parameter

import "time"

// Ranger Shot
const (
	ShotRadiusFloat      = 10.0
	ShotDamageFloat      = 40.0
	ShotLifetime         = 2200 * time.Millisecond
	ShotMaxDistanceFloat = 900.0
)

// Wizard Bomb
const (
	BombRadiusFloat       = 16.0
	BombGravityFloat      = 720.0
	BombFuse              = 1600 * time.Millisecond
	BombDamageCenterFloat = 50.0
	BombDamageOuterFloat  = 25.0
	BombSplashRadiusFloat = 120.0
)

// Warrior Slash
const (
	SlashWidth       = 96
	SlashHeight      = 72
	SlashDamageFloat = 35.0
	SlashLifetime    = 180 * time.Millisecond

	// SlashReach is the extra forward offset past the hitbox half-width
	SlashReach = 16
)

// Scoring
const (
	// KillScore is awarded to the attacking player per opposing actor killed
	KillScore = 1
)
