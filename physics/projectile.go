package physics

import (
	"time"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// AdvanceProjectile steps a projectile by dt with variant-specific integration
// Geometry contact deactivates a Shot, arms a Bomb's explosion, and stops a Slash only
// when the hitbox center is buried in geometry
func AdvanceProjectile(p *component.Projectile, lvl *level.Level, dt time.Duration) {
	if !p.Alive {
		return
	}
	// An armed bomb waits for splash resolution
	if p.Bomb != nil && p.Bomb.Exploding {
		return
	}
	dtF := Delta(dt)
	p.Age += dt

	switch p.Kind {
	case component.ProjectileShot:
		Integrate(&p.X, &p.Y, p.VX, p.VY, dtF)
		if p.Age >= p.Lifetime {
			p.Alive = false
			return
		}
		if p.MaxDistance > 0 && vmath.Length(p.X-p.StartX, p.Y-p.StartY) > p.MaxDistance {
			p.Alive = false
			return
		}
		if _, hit := lvl.FirstHit(p.Bounds()); hit {
			p.Alive = false
		}

	case component.ProjectileBomb:
		p.VY += vmath.Mul(p.Bomb.Gravity, dtF)
		Integrate(&p.X, &p.Y, p.VX, p.VY, dtF)
		if p.Age >= p.Bomb.Fuse {
			p.Bomb.Exploding = true
			return
		}
		if _, hit := lvl.FirstHit(p.Bounds()); hit {
			p.Bomb.Exploding = true
		}

	case component.ProjectileSlash:
		if p.Age >= p.Lifetime {
			p.Alive = false
			return
		}
		if lvl.ContainsPoint(p.X, p.Y) {
			p.Alive = false
		}

	default:
		p.Alive = false
	}
}
