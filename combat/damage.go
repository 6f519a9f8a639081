package combat

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// Hit describes damage dealt to one actor by one projectile
type Hit struct {
	Attacker     component.PlayerID
	Victim       component.ActorID
	VictimPlayer component.PlayerID
	VictimKind   component.ActorKind
	Kind         component.ProjectileKind
	Amount       int64
	Killed       bool
}

// Kill attributes a death to the player whose projectile dealt the final damage
type Kill struct {
	Attacker     component.PlayerID
	Victim       component.ActorID
	VictimPlayer component.PlayerID
	VictimKind   component.ActorKind
}

// Sink receives combat outcomes in resolution order
type Sink interface {
	OnHit(h Hit)
	OnKill(k Kill)
	OnExplosion(x, y, radius int64, owner component.PlayerID)
}

// NopSink discards all combat outcomes
type NopSink struct{}

func (NopSink) OnHit(Hit)                                           {}
func (NopSink) OnKill(Kill)                                         {}
func (NopSink) OnExplosion(int64, int64, int64, component.PlayerID) {}

// SplashDamage interpolates bomb damage from center to outer by distance
// ratio = clamp(dist/radius, 0, 1); a non-positive radius yields ratio 0
func SplashDamage(center, outer, radius, dist int64) int64 {
	var ratio int64
	if radius > 0 {
		ratio = vmath.Clamp(vmath.Div(dist, radius), 0, vmath.Scale)
	}
	return vmath.Lerp(center, outer, ratio)
}

// ApplyDamage subtracts amount from the target, clamping at zero
// Returns true when this damage killed the target
func ApplyDamage(target *component.Actor, amount int64) bool {
	if !target.Alive || amount <= 0 {
		return false
	}
	target.Health -= amount
	if target.Health <= 0 {
		target.Health = 0
		target.Alive = false
		return true
	}
	return false
}

// Scores reports whether a kill by attacker on a victim of victimPlayer awards score
// Unattributed and self-inflicted deaths never score
func Scores(attacker, victimPlayer component.PlayerID) bool {
	return attacker != component.PlayerNone && attacker != victimPlayer
}

// damage applies one projectile hit and reports it
func damage(p *component.Projectile, target *component.Actor, amount int64, sink Sink) {
	killed := ApplyDamage(target, amount)
	sink.OnHit(Hit{
		Attacker:     p.Owner,
		Victim:       target.ID,
		VictimPlayer: target.Player,
		VictimKind:   target.Kind,
		Kind:         p.Kind,
		Amount:       amount,
		Killed:       killed,
	})
	if killed && Scores(p.Owner, target.Player) {
		sink.OnKill(Kill{
			Attacker:     p.Owner,
			Victim:       target.ID,
			VictimPlayer: target.Player,
			VictimKind:   target.Kind,
		})
	}
}
