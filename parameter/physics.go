package parameter

import "github.com/lixenwraith/ghost-arena/vmath"

// World units are pixels of a 1500x960 arena, Y grows downward
const (
	// GravityFloat is downward acceleration (units/s²)
	GravityFloat = 720.0

	// GroundFrictionFloat is horizontal deceleration without input while grounded (units/s²)
	GroundFrictionFloat = 2400.0

	// AirDragFloat is horizontal deceleration without input while airborne (units/s²)
	AirDragFloat = 600.0

	// MaxFallSpeedFloat is terminal downward velocity (units/s)
	MaxFallSpeedFloat = 900.0

	// MaxRiseSpeedFloat caps upward velocity under jetpack thrust (units/s)
	MaxRiseSpeedFloat = 420.0

	// CollisionEpsilonFloat is the gap left after snapping to a rectangle edge
	CollisionEpsilonFloat = 0.01

	// ActorWidth and ActorHeight are the actor hitbox dimensions
	ActorWidth  = 48
	ActorHeight = 64
)

// Pre-computed Q32.32 physics constants
var (
	TickDelta        = vmath.FromFloat(TickDuration.Seconds())
	Gravity          = vmath.FromFloat(GravityFloat)
	GroundFriction   = vmath.FromFloat(GroundFrictionFloat)
	AirDrag          = vmath.FromFloat(AirDragFloat)
	MaxFallSpeed     = vmath.FromFloat(MaxFallSpeedFloat)
	MaxRiseSpeed     = vmath.FromFloat(MaxRiseSpeedFloat)
	CollisionEpsilon = vmath.FromFloat(CollisionEpsilonFloat)
	ActorHalfWidth   = vmath.FromInt(ActorWidth) / 2
	ActorHalfHeight  = vmath.FromInt(ActorHeight) / 2
)
