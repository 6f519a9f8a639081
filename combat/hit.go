package combat

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// ResolveHits tests every live projectile against opposing live actors
// Projectiles resolve in slice order, actors in slice order within each projectile
func ResolveHits(projectiles []*component.Projectile, actors []*component.Actor, sink Sink) {
	if sink == nil {
		sink = NopSink{}
	}
	for _, p := range projectiles {
		if !p.Alive {
			continue
		}
		switch p.Kind {
		case component.ProjectileShot:
			resolveShot(p, actors, sink)
		case component.ProjectileBomb:
			resolveBomb(p, actors, sink)
		case component.ProjectileSlash:
			resolveSlash(p, actors, sink)
		}
	}
}

// resolveShot damages the first opposing actor touched and consumes the shot
func resolveShot(p *component.Projectile, actors []*component.Actor, sink Sink) {
	for _, a := range actors {
		if !a.Alive || !a.Opposes(p.Owner) {
			continue
		}
		if vmath.CircleIntersectsRect(p.X, p.Y, p.Radius, a.Bounds()) {
			damage(p, a, p.Damage, sink)
			p.Alive = false
			return
		}
	}
}

// resolveBomb arms on actor contact, then applies splash to all opposing actors in range
func resolveBomb(p *component.Projectile, actors []*component.Actor, sink Sink) {
	b := p.Bomb
	if !b.Exploding {
		for _, a := range actors {
			if a.Alive && a.Opposes(p.Owner) && vmath.CircleIntersectsRect(p.X, p.Y, p.Radius, a.Bounds()) {
				b.Exploding = true
				break
			}
		}
		if !b.Exploding {
			return
		}
	}

	sink.OnExplosion(p.X, p.Y, b.SplashRadius, p.Owner)
	for _, a := range actors {
		if !a.Alive || !a.Opposes(p.Owner) {
			continue
		}
		dist := vmath.Length(a.X-p.X, a.Y-p.Y)
		if dist > b.SplashRadius {
			continue
		}
		damage(p, a, SplashDamage(p.Damage, b.DamageOuter, b.SplashRadius, dist), sink)
	}
	p.Alive = false
}

// resolveSlash damages each overlapping opposing actor at most once per slash
func resolveSlash(p *component.Projectile, actors []*component.Actor, sink Sink) {
	box := p.Bounds()
	for _, a := range actors {
		if !a.Alive || !a.Opposes(p.Owner) {
			continue
		}
		if !box.Intersects(a.Bounds()) {
			continue
		}
		if p.Slash.Hit.Add(a.ID) {
			damage(p, a, p.Damage, sink)
		}
	}
}
