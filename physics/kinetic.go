package physics

import (
	"time"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// Delta converts a step duration to Q32.32 seconds
// The fixed tick maps to the shared pre-computed constant
func Delta(dt time.Duration) int64 {
	if dt == parameter.TickDuration {
		return parameter.TickDelta
	}
	return vmath.FromFloat(dt.Seconds())
}

// Integrate performs position integration: p = p + v*dt
func Integrate(x, y *int64, vx, vy, dt int64) {
	*x += vmath.Mul(vx, dt)
	*y += vmath.Mul(vy, dt)
}

// ClampToBounds keeps the actor hitbox inside the level
// Velocity pointing out of the arena is zeroed, resting on the floor bound grounds the actor
func ClampToBounds(a *component.Actor, lvl *level.Level) {
	minX, maxX := a.HalfW, lvl.Width-a.HalfW
	minY, maxY := a.HalfH, lvl.Height-a.HalfH

	if a.X < minX {
		a.X = minX
		if a.VX < 0 {
			a.VX = 0
		}
	} else if a.X > maxX {
		a.X = maxX
		if a.VX > 0 {
			a.VX = 0
		}
	}

	if a.Y < minY {
		a.Y = minY
		if a.VY < 0 {
			a.VY = 0
		}
	} else if a.Y > maxY {
		a.Y = maxY
		if a.VY > 0 {
			a.VY = 0
		}
		a.Grounded = true
	}
}
