package physics

import (
	"time"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// AdvanceActor steps an actor by dt under the given input
// Collision is axis-sequential: X is moved and resolved first, then Y is moved and tested
// against the already-updated X. Ghost replays depend on this exact order.
func AdvanceActor(a *component.Actor, in component.Input, lvl *level.Level, dt time.Duration) {
	if !a.Alive {
		return
	}
	dtF := Delta(dt)
	s := &a.Stats

	// Horizontal drive
	axis := in.MoveAxis()
	if axis != 0 {
		target := int64(axis) * s.MoveSpeed
		a.VX = vmath.MoveToward(a.VX, target, vmath.Mul(s.Acceleration, dtF))
	} else {
		decel := parameter.AirDrag
		if a.Grounded {
			decel = parameter.GroundFriction
		}
		a.VX = vmath.MoveToward(a.VX, 0, vmath.Mul(decel, dtF))
	}

	// Jetpack replaces gravity while held and fueled
	thrusting := in.Jetpack && a.Fuel > 0
	if thrusting {
		a.VY -= vmath.Mul(s.JetpackThrust, dtF)
		a.Fuel = vmath.Max(0, a.Fuel-dtF)
	} else {
		a.VY += vmath.Mul(parameter.Gravity, dtF)
	}
	a.VY = vmath.Clamp(a.VY, -parameter.MaxRiseSpeed, parameter.MaxFallSpeed)

	a.Grounded = false
	resolveX(a, lvl, dtF)
	resolveY(a, lvl, dtF)
	ClampToBounds(a, lvl)

	if a.Grounded && !thrusting {
		a.Fuel += vmath.Mul(s.JetpackRegen, dtF)
	}

	// Facing follows aim, falls back to movement intent
	if in.HasAim() {
		if in.AimX > a.X {
			a.Facing = 1
		} else if in.AimX < a.X {
			a.Facing = -1
		}
	} else if axis != 0 {
		a.Facing = axis
	}

	a.Cooldown -= dt
	a.ClampVitals()
}

// resolveX applies horizontal displacement and snaps out of the first intersecting rect
func resolveX(a *component.Actor, lvl *level.Level, dtF int64) {
	a.X += vmath.Mul(a.VX, dtF)
	r, hit := lvl.FirstHit(a.Bounds())
	if !hit {
		return
	}
	if a.VX > 0 {
		a.X = r.X - a.HalfW - parameter.CollisionEpsilon
	} else if a.VX < 0 {
		a.X = r.Right() + a.HalfW + parameter.CollisionEpsilon
	}
	a.VX = 0
}

// resolveY applies vertical displacement using the updated X, a downward hit grounds the actor
func resolveY(a *component.Actor, lvl *level.Level, dtF int64) {
	a.Y += vmath.Mul(a.VY, dtF)
	r, hit := lvl.FirstHit(a.Bounds())
	if !hit {
		return
	}
	if a.VY > 0 {
		a.Y = r.Y - a.HalfH - parameter.CollisionEpsilon
		a.Grounded = true
	} else if a.VY < 0 {
		a.Y = r.Bottom() + a.HalfH + parameter.CollisionEpsilon
	}
	a.VY = 0
}
