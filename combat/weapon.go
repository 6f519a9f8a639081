package combat

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// Fire turns a fire request into the spec of a new projectile and restarts the cooldown
// Returns false when fire is not held or the attack is cooling down
func Fire(a *component.Actor, in component.Input) (component.ProjectileSpec, bool) {
	if !in.Fire || !a.CanFire() {
		return component.ProjectileSpec{}, false
	}

	aimX, aimY := in.AimPoint(a)
	dirX, dirY := vmath.Normalize(aimX-a.X, aimY-a.Y)

	spec := SpecFor(a.Stats, dirX, dirY)
	if spec.Kind == component.ProjectileSlash {
		spec.OriginX, spec.OriginY = a.X, a.Y
	} else {
		// Spawn on the hitbox edge along the aim direction
		spec.OriginX = a.X + vmath.Mul(dirX, a.HalfW)
		spec.OriginY = a.Y + vmath.Mul(dirY, a.HalfH)
	}

	a.Cooldown = a.Stats.AttackCooldown
	return spec, true
}

// SpecFor builds the class attack spec for a unit direction, origin left zero
func SpecFor(stats component.CharacterStats, dirX, dirY int64) component.ProjectileSpec {
	atk := stats.Attack
	spec := component.ProjectileSpec{
		DirX:     dirX,
		DirY:     dirY,
		Speed:    stats.ProjectileSpeed,
		Damage:   atk.Damage,
		Lifetime: atk.Lifetime,
	}

	switch atk.Kind {
	case component.AttackShot:
		spec.Kind = component.ProjectileShot
		spec.Radius = atk.Radius
		spec.MaxDistance = atk.MaxDistance
	case component.AttackBomb:
		spec.Kind = component.ProjectileBomb
		spec.Radius = atk.Radius
		spec.Gravity = atk.Gravity
		spec.DamageOuter = atk.DamageOuter
		spec.SplashRadius = atk.SplashRadius
	case component.AttackSlash:
		spec.Kind = component.ProjectileSlash
		spec.Speed = 0
		spec.Width = atk.Width
		spec.Height = atk.Height
		spec.Reach = atk.Reach
	}
	return spec
}
