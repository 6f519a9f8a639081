package component

import (
	"math"
	"time"

	"github.com/lixenwraith/ghost-arena/vmath"
)

// ProjectileKind tags the projectile variant
type ProjectileKind uint8

const (
	ProjectileShot  ProjectileKind = iota // Linear, expires by lifetime or distance
	ProjectileBomb                        // Arcing, explodes on fuse or contact
	ProjectileSlash                       // Stationary timed hitbox
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileShot:
		return "shot"
	case ProjectileBomb:
		return "bomb"
	case ProjectileSlash:
		return "slash"
	default:
		return "unknown"
	}
}

// ProjectileSpec holds the complete construction parameters of a projectile
// A recording stores specs verbatim so replay recreates the identical projectile
type ProjectileSpec struct {
	Kind ProjectileKind

	OriginX, OriginY int64 // Spawn point for Shot/Bomb, owner center for Slash
	DirX, DirY       int64 // Unit aim direction
	Speed            int64

	Radius       int64
	Damage       int64
	Lifetime     time.Duration // Bomb: fuse
	MaxDistance  int64
	Gravity      int64
	DamageOuter  int64
	SplashRadius int64
	Width        int64
	Height       int64
	Reach        int64
}

// BombPayload holds Bomb-only state
type BombPayload struct {
	Gravity      int64
	DamageOuter  int64
	SplashRadius int64
	Fuse         time.Duration

	// Exploding is set on fuse expiry or contact, splash resolves on the same tick
	Exploding bool
}

// SlashPayload holds Slash-only state
type SlashPayload struct {
	FacingAngle float64 // Radians, presentation only
	Hit         HitSet
}

// Projectile is a live projectile, shared fields plus one variant payload
type Projectile struct {
	Kind  ProjectileKind
	Owner PlayerID

	X, Y   int64
	VX, VY int64

	StartX, StartY int64
	MaxDistance    int64 // 0 = unlimited

	Radius       int64
	HalfW, HalfH int64

	Age      time.Duration
	Lifetime time.Duration
	Damage   int64
	Alive    bool

	Bomb  *BombPayload
	Slash *SlashPayload
}

// NewProjectile builds a live projectile from its spec, owned by owner
func NewProjectile(spec ProjectileSpec, owner PlayerID) *Projectile {
	p := &Projectile{
		Kind:        spec.Kind,
		Owner:       owner,
		X:           spec.OriginX,
		Y:           spec.OriginY,
		VX:          vmath.Mul(spec.DirX, spec.Speed),
		VY:          vmath.Mul(spec.DirY, spec.Speed),
		MaxDistance: spec.MaxDistance,
		Radius:      spec.Radius,
		HalfW:       spec.Radius,
		HalfH:       spec.Radius,
		Lifetime:    spec.Lifetime,
		Damage:      spec.Damage,
		Alive:       true,
	}

	switch spec.Kind {
	case ProjectileBomb:
		p.Bomb = &BombPayload{
			Gravity:      spec.Gravity,
			DamageOuter:  spec.DamageOuter,
			SplashRadius: spec.SplashRadius,
			Fuse:         spec.Lifetime,
		}
	case ProjectileSlash:
		p.VX, p.VY = 0, 0
		p.HalfW = spec.Width / 2
		p.HalfH = spec.Height / 2
		p.Radius = vmath.Max(p.HalfW, p.HalfH)
		p.X = spec.OriginX + vmath.Mul(spec.DirX, p.HalfW+spec.Reach)
		p.Y = spec.OriginY + vmath.Mul(spec.DirY, p.HalfH)
		p.MaxDistance = 0
		p.Slash = &SlashPayload{
			FacingAngle: math.Atan2(vmath.ToFloat(spec.DirY), vmath.ToFloat(spec.DirX)),
		}
	}

	p.StartX, p.StartY = p.X, p.Y
	return p
}

// Bounds returns the projectile hit extents
func (p *Projectile) Bounds() vmath.Rect {
	return vmath.RectFromCenter(p.X, p.Y, p.HalfW, p.HalfH)
}

// Clone returns a deep copy for read-only presentation snapshots
func (p *Projectile) Clone() Projectile {
	c := *p
	if p.Bomb != nil {
		b := *p.Bomb
		c.Bomb = &b
	}
	if p.Slash != nil {
		s := SlashPayload{FacingAngle: p.Slash.FacingAngle, Hit: p.Slash.Hit.Clone()}
		c.Slash = &s
	}
	return c
}
